package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"mausam-api/config"
	v1 "mausam-api/internal/controllers/http/v1"
	"mausam-api/internal/repositories"
	"mausam-api/internal/services/view"
	"mausam-api/internal/services/weather"
	"mausam-api/pkg/httpserver"
	"mausam-api/pkg/logger"
	"mausam-api/pkg/observe"
)

// @title Mausam API
// @version 1.0.0
// @description Weather for Indian cities with forecast-day views, favorites and AI explanations.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Cities
// @tag.description City lookup and autocomplete
// @tag.name Sessions
// @tag.description View instances and their transitions
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	configPath := config.DefaultPath
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}
	cnf, err := config.NewConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	writers := []io.Writer{os.Stdout}
	var hook *observe.SentryHook
	if cnf.SentryDSN != "" {
		hook = observe.NewSentryHook(cnf.AppEnv, cnf.AppName, !cnf.IsProduction(), cnf.SentryDSN)
		writers = append(writers, hook)
	}

	l := logger.NewZapLogger(cnf.AppName, writers, logger.WithEnv(cnf.AppEnv), logger.WithLevel(cnf.LogLevel))
	if hook != nil {
		hook.SetLogger(l)
	}

	weatherService := weather.NewWeatherService(repositories.NewStaticCityRepository(), l)
	if _, err := weatherService.City(cnf.DefaultCity); err != nil {
		l.Fatal("default city is not in the dataset", map[string]any{"city": cnf.DefaultCity})
	}

	favorites, err := repositories.InitFavoritesRepository(cnf, l)
	if err != nil {
		l.Fatal("cannot open favorites storage", map[string]any{"err": err})
	}

	explainer := repositories.NewGenerativeExplainer(ctx, cnf.AI, l, nil)

	sessions := view.NewRegistry(view.Deps{
		Weather:   weatherService,
		Favorites: favorites,
		Explainer: explainer,
		Clock:     clockwork.NewRealClock(),
		Logger:    l,
	}, cnf.DefaultCity,
		view.WithIdleTTL(cnf.SessionIdleTTL),
		view.WithMaxSessions(cnf.MaxSessions),
	)

	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:        cnf.AppName,
		RateLimitRPS:   cnf.RateLimitRPS,
		RateLimitBurst: cnf.RateLimitBurst,
	})

	v1.NewRouter(
		app,
		weatherService,
		sessions,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":      cnf.Port,
		"favorites": favorites.Name(),
		"explainer": explainer.Name(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		_ = favorites.Close()
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
