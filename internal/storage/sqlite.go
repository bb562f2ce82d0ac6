package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-local/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS storage_slots (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)
`

// SQLiteSlot stores the collection as one row of a local SQLite database.
type SQLiteSlot struct {
	logger zerolog.Logger
	db     *sql.DB
	key    string
}

func NewSQLiteSlot(ctx context.Context, logger zerolog.Logger, path, key string) (*SQLiteSlot, error) {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single writer keeps SQLite from returning SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	_, err = db.ExecContext(ctx, sqliteSchema)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info().
		Str("path", path).
		Msg("opened sqlite storage")
	return &SQLiteSlot{
		logger: logger,
		db:     db,
		key:    key,
	}, nil
}

func (s *SQLiteSlot) Load(ctx context.Context) ([]models.Task, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM storage_slots WHERE key = ?`,
		s.key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []models.Task{}, nil
		}
		return nil, fmt.Errorf("failed to select storage slot: %w", err)
	}

	tasks := Decode(s.logger, []byte(value))
	s.logger.Debug().
		Str("key", s.key).
		Int("count", len(tasks)).
		Msg("loaded tasks")
	return tasks, nil
}

func (s *SQLiteSlot) Save(ctx context.Context, tasks []models.Task) error {
	b, err := Encode(tasks)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO storage_slots (key, value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (key) DO UPDATE
SET value = excluded.value,
    updated_at = excluded.updated_at
`, s.key, string(b))
	if err != nil {
		return fmt.Errorf("failed to upsert storage slot: %w", err)
	}
	return nil
}

func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
