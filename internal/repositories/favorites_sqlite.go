package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"mausam-api/pkg/logger"
)

const createEntriesTable = `
CREATE TABLE IF NOT EXISTS entries (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// SQLiteFavoritesRepository stores the favorites entry in a key/value table.
type SQLiteFavoritesRepository struct {
	db  *sql.DB
	key string
	l   *logger.Logger
}

func NewSQLiteFavoritesRepository(path, key string, l *logger.Logger) (*SQLiteFavoritesRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// one writer keeps sqlite away from "database is locked"
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createEntriesTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create entries table: %w", err)
	}

	return &SQLiteFavoritesRepository{
		db:  db,
		key: key,
		l:   l,
	}, nil
}

func (s *SQLiteFavoritesRepository) Name() string {
	return "sqlite"
}

// Load returns nil, nil when the entry has never been written.
func (s *SQLiteFavoritesRepository) Load(ctx context.Context) ([]string, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM entries WHERE key = ?`, s.key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites entry: %w", err)
	}

	var cities []string
	if err := json.Unmarshal([]byte(raw), &cities); err != nil {
		return nil, fmt.Errorf("failed to decode favorites entry %q: %w", s.key, err)
	}

	s.l.Debug("loaded favorites", map[string]any{"key": s.key, "count": len(cities)})

	return cities, nil
}

func (s *SQLiteFavoritesRepository) Save(ctx context.Context, cities []string) error {
	encoded, err := json.Marshal(nonNil(cities))
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO entries (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.key, string(encoded),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert favorites entry: %w", err)
	}

	return nil
}

func (s *SQLiteFavoritesRepository) Close() error {
	return s.db.Close()
}
