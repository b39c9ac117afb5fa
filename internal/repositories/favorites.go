package repositories

import (
	"context"
	"fmt"

	"mausam-api/config"
	"mausam-api/pkg/logger"
)

// FavoritesRepository persists the favorites list as one named entry
// holding a JSON-encoded ordered list of city names.
type FavoritesRepository interface {
	Name() string
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, cities []string) error
	Close() error
}

func InitFavoritesRepository(cfg *config.Config, l *logger.Logger) (FavoritesRepository, error) {
	switch cfg.FavoritesDriver {
	case config.FavoritesDriverFile:
		return NewFileFavoritesRepository(cfg.FavoritesPath, cfg.FavoritesKey, l), nil
	case config.FavoritesDriverSQLite:
		return NewSQLiteFavoritesRepository(cfg.FavoritesPath, cfg.FavoritesKey, l)
	}
	return nil, fmt.Errorf("unknown favorites driver: %s", cfg.FavoritesDriver)
}
