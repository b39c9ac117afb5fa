package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config/config.yaml"

const (
	FavoritesDriverFile   = "file"
	FavoritesDriverSQLite = "sqlite"
)

type Config struct {
	AppName    string `yaml:"app_name" envconfig:"APP_NAME"`
	AppVersion string `yaml:"app_version" envconfig:"APP_VERSION"`
	AppEnv     string `yaml:"app_env" envconfig:"APP_ENV"`
	Port       string `yaml:"port" envconfig:"PORT"`
	LogLevel   string `yaml:"log_level" envconfig:"LOG_LEVEL"`

	DefaultCity string `yaml:"default_city" envconfig:"DEFAULT_CITY"`

	// Sessions untouched for SessionIdleTTL are dropped. Zero keeps them forever.
	SessionIdleTTL time.Duration `yaml:"session_idle_ttl" envconfig:"SESSION_IDLE_TTL"`
	// At the cap, creating a session evicts the least recently used one.
	// Zero means no cap.
	MaxSessions int `yaml:"max_sessions" envconfig:"MAX_SESSIONS"`

	FavoritesDriver string `yaml:"favorites_driver" envconfig:"FAVORITES_DRIVER"`
	FavoritesPath   string `yaml:"favorites_path" envconfig:"FAVORITES_PATH"`
	FavoritesKey    string `yaml:"favorites_key" envconfig:"FAVORITES_KEY"`

	AI AIConfig `yaml:"ai"`

	RateLimitRPS   float64 `yaml:"rate_limit_rps" envconfig:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `yaml:"rate_limit_burst" envconfig:"RATE_LIMIT_BURST"`

	SentryDSN string `yaml:"sentry_dsn,omitempty" envconfig:"SENTRY_DSN"`
}

type AIConfig struct {
	BaseURL string `yaml:"base_url" envconfig:"AI_BASE_URL"`
	Model   string `yaml:"model" envconfig:"AI_MODEL"`
	APIKey  string `yaml:"api_key,omitempty" envconfig:"AI_API_KEY"`
	// Zero disables the client timeout.
	Timeout time.Duration `yaml:"timeout" envconfig:"AI_TIMEOUT"`
}

func defaults() Config {
	return Config{
		AppName:         "mausam-api",
		AppVersion:      "1.0.0",
		AppEnv:          "development",
		Port:            "8080",
		LogLevel:        "debug",
		DefaultCity:     "Delhi",
		SessionIdleTTL:  30 * time.Minute,
		MaxSessions:     10000,
		FavoritesDriver: FavoritesDriverFile,
		FavoritesPath:   "mausam-favorites.json",
		FavoritesKey:    "favorites",
		AI: AIConfig{
			BaseURL: "https://generativelanguage.googleapis.com",
			Model:   "gemini-2.0-flash",
		},
		RateLimitRPS:   20,
		RateLimitBurst: 40,
	}
}

// NewConfig builds the configuration from defaults, then the YAML file at path
// (skipped when it does not exist), then environment variables.
func NewConfig(path string) (*Config, error) {
	cnf := defaults()

	if yamlData, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(yamlData, &cnf); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read YAML config: %w", err)
	}

	if err := envconfig.Process("", &cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	if err := cnf.Validate(); err != nil {
		return nil, err
	}

	return &cnf, nil
}

func (c *Config) Validate() error {
	if c.AppName == "" {
		return errors.New("app_name is required")
	}
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.DefaultCity == "" {
		return errors.New("default_city is required")
	}
	switch c.FavoritesDriver {
	case FavoritesDriverFile, FavoritesDriverSQLite:
	default:
		return fmt.Errorf("invalid favorites_driver: %q", c.FavoritesDriver)
	}
	if c.FavoritesPath == "" {
		return errors.New("favorites_path is required")
	}
	if c.FavoritesKey == "" {
		return errors.New("favorites_key is required")
	}
	if c.AI.Timeout < 0 {
		return fmt.Errorf("invalid ai.timeout: %s", c.AI.Timeout)
	}
	if c.SessionIdleTTL < 0 {
		return fmt.Errorf("invalid session_idle_ttl: %s", c.SessionIdleTTL)
	}
	if c.MaxSessions < 0 {
		return fmt.Errorf("invalid max_sessions: %d", c.MaxSessions)
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("invalid rate_limit_rps: %v", c.RateLimitRPS)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "prod"
}
