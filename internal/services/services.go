package services

import (
	"context"
	"errors"

	"github.com/adanyl0v/go-todo-local/internal/models"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTopicRequired = errors.New("topic is required")
)

type TaskService interface {
	// List returns a copy of the current collection in stored order.
	List(ctx context.Context) []models.Task

	// Get returns the task with the given ID or ErrTaskNotFound.
	Get(ctx context.Context, id string) (*models.Task, error)

	// Create adds a task built from the payload and persists the collection.
	//
	// It returns ErrTopicRequired if the normalized topic is empty.
	Create(ctx context.Context, payload models.TaskPayload) (*models.Task, error)

	// Update replaces the editable fields of the task with the given ID.
	//
	// It returns ErrTaskNotFound if there is no such task or
	// ErrTopicRequired if the normalized topic is empty.
	Update(ctx context.Context, id string, payload models.TaskPayload) (*models.Task, error)

	// ToggleComplete flips the completion state of the task with the
	// given ID or returns ErrTaskNotFound.
	ToggleComplete(ctx context.Context, id string) (*models.Task, error)

	// Delete removes the task with the given ID or returns ErrTaskNotFound.
	Delete(ctx context.Context, id string) error
}
