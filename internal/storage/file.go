package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-local/internal/models"
)

// FileSlot stores the collection in <dir>/<key>.json.
type FileSlot struct {
	mu     sync.Mutex
	logger zerolog.Logger
	path   string
}

func NewFileSlot(logger zerolog.Logger, dir, key string) (*FileSlot, error) {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &FileSlot{
		logger: logger,
		path:   filepath.Join(dir, key+".json"),
	}, nil
}

func (s *FileSlot) Load(context.Context) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug().
				Str("path", s.path).
				Msg("storage file not found")
			return []models.Task{}, nil
		}
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}

	tasks := Decode(s.logger, b)
	s.logger.Debug().
		Str("path", s.path).
		Int("count", len(tasks)).
		Msg("loaded tasks")
	return tasks, nil
}

func (s *FileSlot) Save(_ context.Context, tasks []models.Task) error {
	b, err := Encode(tasks)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"
	err = os.WriteFile(tmp, b, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}
	err = os.Rename(tmp, s.path)
	if err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}

	s.logger.Debug().
		Str("path", s.path).
		Int("count", len(tasks)).
		Msg("saved tasks")
	return nil
}

func (s *FileSlot) Close() error {
	return nil
}
