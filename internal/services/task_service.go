package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-local/internal/models"
	"github.com/adanyl0v/go-todo-local/internal/storage"
	"github.com/adanyl0v/go-todo-local/internal/tasks"
)

// taskServiceImpl treats the slot as the source of truth. Each call
// reloads the collection while holding mu, applies one transition from
// package tasks and writes the result back, so other processes sharing
// the slot (todoctl, a second server) see and keep each other's changes.
type taskServiceImpl struct {
	logger zerolog.Logger
	slot   storage.Slot
	clock  tasks.Clock
	ids    tasks.IDProvider

	mu sync.Mutex
	// tasks is the last collection read from or written to the slot.
	tasks []models.Task
}

// NewTaskService loads the collection from slot. A nil clock or ids
// falls back to tasks.SystemClock and tasks.DefaultIDs.
func NewTaskService(
	ctx context.Context,
	logger zerolog.Logger,
	slot storage.Slot,
	clock tasks.Clock,
	ids tasks.IDProvider,
) (TaskService, error) {
	if clock == nil {
		clock = tasks.SystemClock
	}
	if ids == nil {
		ids = tasks.DefaultIDs
	}

	loaded, err := slot.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	logger.Info().
		Int("count", len(loaded)).
		Msg("loaded tasks")

	return &taskServiceImpl{
		logger: logger,
		slot:   slot,
		clock:  clock,
		ids:    ids,
		tasks:  loaded,
	}, nil
}

func (s *taskServiceImpl) List(ctx context.Context) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	// An unreachable slot serves the last known collection.
	_ = s.refresh(ctx)
	list := make([]models.Task, len(s.tasks))
	copy(list, s.tasks)
	return list
}

func (s *taskServiceImpl) Get(ctx context.Context, id string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// An unreachable slot serves the last known collection.
	_ = s.refresh(ctx)
	task, ok := tasks.Find(s.tasks, id)
	if !ok {
		return nil, ErrTaskNotFound
	}
	return &task, nil
}

func (s *taskServiceImpl) Create(ctx context.Context, payload models.TaskPayload) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.refresh(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	res := tasks.Add(s.tasks, payload, tasks.AddOptions{
		Now: &now,
		ID:  s.ids.NewID(now),
	})
	if !res.Added {
		s.logger.Warn().Msg("rejected task without topic")
		return nil, ErrTopicRequired
	}

	s.commit(ctx, res.Tasks)
	s.logger.Info().
		Str("task_id", res.Task.ID).
		Msg("created task")
	return res.Task, nil
}

func (s *taskServiceImpl) Update(ctx context.Context, id string, payload models.TaskPayload) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.refresh(ctx)
	if err != nil {
		return nil, err
	}

	if _, ok := tasks.Find(s.tasks, id); !ok {
		s.logger.Error().
			Str("task_id", id).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}

	res := tasks.Update(s.tasks, id, payload, tasks.UpdateOptions{Now: tasks.At(s.clock())})
	if !res.Updated {
		s.logger.Warn().
			Str("task_id", id).
			Msg("rejected update without topic")
		return nil, ErrTopicRequired
	}

	s.commit(ctx, res.Tasks)
	task, _ := tasks.Find(s.tasks, id)
	s.logger.Info().
		Str("task_id", id).
		Msg("updated task")
	return &task, nil
}

func (s *taskServiceImpl) ToggleComplete(ctx context.Context, id string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.refresh(ctx)
	if err != nil {
		return nil, err
	}

	res := tasks.ToggleComplete(s.tasks, id, tasks.ToggleOptions{Now: tasks.At(s.clock())})
	if !res.Toggled {
		s.logger.Error().
			Str("task_id", id).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}

	s.commit(ctx, res.Tasks)
	task, _ := tasks.Find(s.tasks, id)
	s.logger.Info().
		Str("task_id", id).
		Bool("completed", res.Completed).
		Msg("toggled task")
	return &task, nil
}

func (s *taskServiceImpl) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.refresh(ctx)
	if err != nil {
		return err
	}

	res := tasks.DeleteByID(s.tasks, id)
	if !res.Deleted {
		s.logger.Error().
			Str("task_id", id).
			Msg("task not found")
		return ErrTaskNotFound
	}

	s.commit(ctx, res.Tasks)
	s.logger.Info().
		Str("task_id", id).
		Msg("deleted task")
	return nil
}

// refresh replaces the collection with the slot's current contents.
func (s *taskServiceImpl) refresh(ctx context.Context) error {
	loaded, err := s.slot.Load(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to reload tasks")
		return fmt.Errorf("failed to reload tasks: %w", err)
	}
	s.tasks = loaded
	return nil
}

// commit replaces the collection and writes it to the slot. A failed
// write is logged and not reported to the caller.
func (s *taskServiceImpl) commit(ctx context.Context, next []models.Task) {
	s.tasks = next

	err := s.slot.Save(ctx, next)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int("count", len(next)).
			Msg("failed to save tasks")
		return
	}
	s.logger.Debug().
		Int("count", len(next)).
		Msg("saved tasks")
}
