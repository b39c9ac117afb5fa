package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"mausam-api/pkg/logger"
)

// FileFavoritesRepository keeps named entries in a single JSON object on disk,
// e.g. {"favorites": "[\"Delhi\",\"Mumbai\"]"}. The value of an entry is
// itself JSON text, the same layout a browser key/value store would hold.
type FileFavoritesRepository struct {
	path string
	key  string
	mu   sync.Mutex
	l    *logger.Logger
}

func NewFileFavoritesRepository(path, key string, l *logger.Logger) *FileFavoritesRepository {
	return &FileFavoritesRepository{
		path: path,
		key:  key,
		l:    l,
	}
}

func (f *FileFavoritesRepository) Name() string {
	return "file"
}

// Load returns nil, nil when the file or the entry does not exist yet.
func (f *FileFavoritesRepository) Load(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.readEntries()
	if err != nil {
		return nil, err
	}

	raw, ok := entries[f.key]
	if !ok {
		return nil, nil
	}

	var cities []string
	if err := json.Unmarshal([]byte(raw), &cities); err != nil {
		return nil, fmt.Errorf("failed to decode favorites entry %q: %w", f.key, err)
	}

	f.l.Debug("loaded favorites", map[string]any{"path": f.path, "count": len(cities)})

	return cities, nil
}

func (f *FileFavoritesRepository) Save(_ context.Context, cities []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	encoded, err := json.Marshal(nonNil(cities))
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}

	// a corrupt file is replaced rather than blocking every future write
	entries, err := f.readEntries()
	if err != nil {
		f.l.Warning("replacing unreadable favorites file", map[string]any{"path": f.path, "err": err})
		entries = map[string]string{}
	}
	entries[f.key] = string(encoded)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode favorites file: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create favorites directory: %w", err)
		}
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write favorites file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace favorites file: %w", err)
	}

	return nil
}

func (f *FileFavoritesRepository) Close() error {
	return nil
}

func (f *FileFavoritesRepository) readEntries() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites file: %w", err)
	}

	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse favorites file: %w", err)
	}

	return entries, nil
}

func nonNil(cities []string) []string {
	if cities == nil {
		return []string{}
	}
	return cities
}
