package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-local/internal/config"
	"github.com/adanyl0v/go-todo-local/internal/models"
)

// PostgresSlot stores the collection as one row of the storage_slots table.
type PostgresSlot struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
	key    string
}

func NewPostgresSlot(logger zerolog.Logger, pgPool *pgxpool.Pool, key string) *PostgresSlot {
	return &PostgresSlot{
		logger: logger,
		pgPool: pgPool,
		key:    key,
	}
}

// ConnectPostgresSlot opens a pool, pings it and ensures the schema exists.
func ConnectPostgresSlot(ctx context.Context, logger zerolog.Logger, cfg config.PostgresConfig, key string) (*PostgresSlot, error) {
	connURL := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Username, cfg.Password, cfg.Host,
		cfg.Port, cfg.Database, cfg.SSLMode)

	poolCfg, err := pgxpool.ParseConfig(connURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pgPool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()

	err = pgPool.Ping(pingCtx)
	if err != nil {
		pgPool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Msg("connected to postgres")

	slot := NewPostgresSlot(logger, pgPool, key)
	err = slot.EnsureSchema(ctx)
	if err != nil {
		pgPool.Close()
		return nil, err
	}
	return slot, nil
}

func (s *PostgresSlot) EnsureSchema(ctx context.Context) error {
	const createTableQuery = `
CREATE TABLE IF NOT EXISTS storage_slots (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)
`
	_, err := s.pgPool.Exec(ctx, createTableQuery)
	if err != nil {
		return fmt.Errorf("failed to create storage_slots table: %w", err)
	}
	return nil
}

func (s *PostgresSlot) Load(ctx context.Context) ([]models.Task, error) {
	const selectSlotQuery = `
SELECT value
FROM storage_slots
WHERE key = $1
`
	var value string
	err := s.pgPool.QueryRow(
		ctx,
		selectSlotQuery,
		s.key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Debug().
				Str("key", s.key).
				Msg("storage slot not found")
			return []models.Task{}, nil
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
			s.logger.Warn().
				Str("key", s.key).
				Msg("storage table missing, starting empty")
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

func (s *PostgresSlot) Save(ctx context.Context, tasks []models.Task) error {
	b, err := Encode(tasks)
	if err != nil {
		return err
	}

	const upsertSlotQuery = `
INSERT INTO storage_slots (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value,
    updated_at = EXCLUDED.updated_at
`
	_, err = s.pgPool.Exec(
		ctx,
		upsertSlotQuery,
		s.key,
		string(b),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert storage slot: %w", err)
	}

	s.logger.Debug().
		Str("key", s.key).
		Int("count", len(tasks)).
		Msg("saved tasks")
	return nil
}

func (s *PostgresSlot) Close() error {
	s.pgPool.Close()
	s.logger.Info().Msg("disconnected from postgres")
	return nil
}
