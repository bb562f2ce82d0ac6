// Package storage persists a task collection in a single named slot.
//
// A slot holds the whole collection as one JSON array. Loading never
// fails because of the slot's contents: a missing value, malformed JSON
// or a JSON value that is not an array all load as an empty collection.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-local/internal/config"
	"github.com/adanyl0v/go-todo-local/internal/models"
)

type Slot interface {
	// Load returns the stored collection. An error is returned only when
	// the backend itself is unreachable.
	Load(ctx context.Context) ([]models.Task, error)

	// Save replaces the stored collection with tasks.
	Save(ctx context.Context, tasks []models.Task) error

	Close() error
}

// Open connects to the slot backend selected by cfg.Storage.Driver.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (Slot, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverFile:
		return NewFileSlot(logger, cfg.Storage.FileDir, cfg.Storage.Key)
	case config.StorageDriverSQLite:
		return NewSQLiteSlot(ctx, logger, cfg.Storage.SQLitePath, cfg.Storage.Key)
	case config.StorageDriverPostgres:
		return ConnectPostgresSlot(ctx, logger, cfg.Postgres, cfg.Storage.Key)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

// Decode parses a stored slot value, degrading to an empty collection.
func Decode(logger zerolog.Logger, raw []byte) []models.Task {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []models.Task{}
	}

	if trimmed[0] != '[' {
		logger.Warn().
			Int("size", len(raw)).
			Msg("stored value is not an array, starting empty")
		return []models.Task{}
	}

	var tasks []models.Task
	err := json.Unmarshal(trimmed, &tasks)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to decode stored tasks, starting empty")
		return []models.Task{}
	}
	seen := make(map[string]struct{}, len(tasks))
	for i, task := range tasks {
		if task.ID == "" || strings.TrimSpace(task.Topic) == "" {
			logger.Warn().
				Int("index", i).
				Msg("stored task has no id or topic, starting empty")
			return []models.Task{}
		}
		if _, ok := seen[task.ID]; ok {
			logger.Warn().
				Str("task_id", task.ID).
				Msg("stored task id is duplicated, starting empty")
			return []models.Task{}
		}
		seen[task.ID] = struct{}{}
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks
}

func Encode(tasks []models.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	b, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tasks: %w", err)
	}
	return b, nil
}
