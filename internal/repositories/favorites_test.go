package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mausam-api/config"
	"mausam-api/pkg/logger"
)

func favoritesBackends(t *testing.T) map[string]FavoritesRepository {
	t.Helper()
	dir := t.TempDir()
	l := logger.NewNop()

	sqliteRepo, err := NewSQLiteFavoritesRepository(filepath.Join(dir, "favorites.db"), "favorites", l)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteRepo.Close() })

	return map[string]FavoritesRepository{
		"file":   NewFileFavoritesRepository(filepath.Join(dir, "favorites.json"), "favorites", l),
		"sqlite": sqliteRepo,
	}
}

func TestFavoritesRepository_EmptyLoad(t *testing.T) {
	for name, repo := range favoritesBackends(t) {
		t.Run(name, func(t *testing.T) {
			cities, err := repo.Load(context.Background())
			require.NoError(t, err)
			assert.Empty(t, cities)
		})
	}
}

func TestFavoritesRepository_RoundTripKeepsOrder(t *testing.T) {
	ctx := context.Background()
	for name, repo := range favoritesBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, repo.Save(ctx, []string{"Mumbai", "Delhi", "Chennai"}))

			cities, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"Mumbai", "Delhi", "Chennai"}, cities)

			// rewrite replaces the entry
			require.NoError(t, repo.Save(ctx, []string{"Kolkata"}))
			cities, err = repo.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"Kolkata"}, cities)

			require.NoError(t, repo.Save(ctx, nil))
			cities, err = repo.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{}, cities)
		})
	}
}

func TestFileFavoritesRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "favorites.json")

	first := NewFileFavoritesRepository(path, "favorites", logger.NewNop())
	require.NoError(t, first.Save(ctx, []string{"Delhi", "Bangalore"}))

	second := NewFileFavoritesRepository(path, "favorites", logger.NewNop())
	cities, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Delhi", "Bangalore"}, cities)
}

func TestFileFavoritesRepository_KeepsOtherEntries(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"\"dark\""}`), 0o600))

	repo := NewFileFavoritesRepository(path, "favorites", logger.NewNop())
	require.NoError(t, repo.Save(ctx, []string{"Delhi"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"theme"`)
	assert.Contains(t, string(data), `"favorites"`)
}

func TestFileFavoritesRepository_CorruptValue(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"favorites":"not-a-list"}`), 0o600))

	repo := NewFileFavoritesRepository(path, "favorites", logger.NewNop())
	_, err := repo.Load(ctx)
	require.Error(t, err)

	// a write after corruption recovers the entry
	require.NoError(t, repo.Save(ctx, []string{"Chennai"}))
	cities, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chennai"}, cities)
}

func TestFileFavoritesRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte(`{{{`), 0o600))

	repo := NewFileFavoritesRepository(path, "favorites", logger.NewNop())
	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse favorites file")
}

func TestSQLiteFavoritesRepository_CorruptValue(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSQLiteFavoritesRepository(filepath.Join(t.TempDir(), "f.db"), "favorites", logger.NewNop())
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.db.Exec(`INSERT INTO entries (key, value) VALUES ('favorites', '{oops')`)
	require.NoError(t, err)

	_, err = repo.Load(ctx)
	require.Error(t, err)
}

func TestInitFavoritesRepository(t *testing.T) {
	dir := t.TempDir()

	cfg := &config.Config{FavoritesDriver: config.FavoritesDriverFile, FavoritesPath: filepath.Join(dir, "f.json"), FavoritesKey: "favorites"}
	repo, err := InitFavoritesRepository(cfg, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "file", repo.Name())

	cfg.FavoritesDriver = config.FavoritesDriverSQLite
	cfg.FavoritesPath = filepath.Join(dir, "f.db")
	repo, err = InitFavoritesRepository(cfg, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "sqlite", repo.Name())
	require.NoError(t, repo.Close())

	cfg.FavoritesDriver = "redis"
	_, err = InitFavoritesRepository(cfg, logger.NewNop())
	require.Error(t, err)
}
