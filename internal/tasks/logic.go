// Package tasks holds the pure state transitions of a task collection.
//
// Every operation takes the current collection and returns a fresh one
// together with an outcome flag. The input slice is never modified and
// no operation returns an error: "not found" and "invalid input" are
// reported through the outcome flag.
package tasks

import (
	"strings"

	"github.com/adanyl0v/go-todo-local/internal/models"
)

// Normalize trims the topic and description and fills in the default
// priority and status when they are absent.
func Normalize(payload models.TaskPayload) models.TaskFields {
	return models.TaskFields{
		Topic:       strings.TrimSpace(valueOr(payload.Topic, "")),
		Priority:    valueOr(payload.Priority, models.PriorityMedium),
		Status:      valueOr(payload.Status, models.StatusTodo),
		Description: strings.TrimSpace(valueOr(payload.Description, "")),
	}
}

// IsValidNew reports whether payload can be added as a new task.
func IsValidNew(payload models.TaskPayload) bool {
	return Normalize(payload).Topic != ""
}

type AddOptions struct {
	// Now defaults to the system clock when nil.
	Now *int64
	// ID defaults to DefaultIDs.NewID(Now) when empty.
	ID string
}

type AddResult struct {
	Tasks []models.Task
	Added bool
	// Task is nil unless Added is true.
	Task *models.Task
}

func Add(tasks []models.Task, payload models.TaskPayload, opts AddOptions) AddResult {
	now := nowOr(opts.Now)

	fields := Normalize(payload)
	if fields.Topic == "" {
		return AddResult{Tasks: clone(tasks)}
	}

	id := opts.ID
	if id == "" {
		id = DefaultIDs.NewID(now)
	}

	task := models.Task{
		ID:          id,
		Topic:       fields.Topic,
		Priority:    fields.Priority,
		Status:      fields.Status,
		Description: fields.Description,
		Completed:   fields.Status == models.StatusDone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	next := make([]models.Task, len(tasks), len(tasks)+1)
	copy(next, tasks)
	next = append(next, task)

	return AddResult{
		Tasks: next,
		Added: true,
		Task:  &task,
	}
}

type UpdateOptions struct {
	Now *int64
}

type UpdateResult struct {
	Tasks   []models.Task
	Updated bool
}

// Update replaces the editable fields of the task with the given id.
//
// Setting the status to done marks the task completed. Moving the status
// away from done leaves Completed untouched.
func Update(tasks []models.Task, id string, payload models.TaskPayload, opts UpdateOptions) UpdateResult {
	now := nowOr(opts.Now)

	fields := Normalize(payload)
	idx := indexOf(tasks, id)
	if idx == -1 || fields.Topic == "" {
		return UpdateResult{Tasks: clone(tasks)}
	}

	next := clone(tasks)
	task := &next[idx]
	task.Topic = fields.Topic
	task.Priority = fields.Priority
	task.Status = fields.Status
	task.Description = fields.Description
	if fields.Status == models.StatusDone {
		task.Completed = true
	}
	task.UpdatedAt = now

	return UpdateResult{Tasks: next, Updated: true}
}

type ToggleOptions struct {
	Now *int64
}

type ToggleResult struct {
	Tasks   []models.Task
	Toggled bool
	// Completed is the new completion state, valid only when Toggled.
	Completed bool
}

// ToggleComplete flips the completion state of the task with the given id.
//
// Completing a task forces its status to done. Un-completing reverts the
// status to todo only if it was done.
func ToggleComplete(tasks []models.Task, id string, opts ToggleOptions) ToggleResult {
	now := nowOr(opts.Now)

	idx := indexOf(tasks, id)
	if idx == -1 {
		return ToggleResult{Tasks: clone(tasks)}
	}

	next := clone(tasks)
	task := &next[idx]
	task.Completed = !task.Completed
	switch {
	case task.Completed:
		task.Status = models.StatusDone
	case task.Status == models.StatusDone:
		task.Status = models.StatusTodo
	}
	task.UpdatedAt = now

	return ToggleResult{
		Tasks:     next,
		Toggled:   true,
		Completed: task.Completed,
	}
}

type DeleteResult struct {
	Tasks   []models.Task
	Deleted bool
}

func DeleteByID(tasks []models.Task, id string) DeleteResult {
	idx := indexOf(tasks, id)
	if idx == -1 {
		return DeleteResult{Tasks: clone(tasks)}
	}

	next := make([]models.Task, 0, len(tasks)-1)
	next = append(next, tasks[:idx]...)
	next = append(next, tasks[idx+1:]...)
	return DeleteResult{Tasks: next, Deleted: true}
}

// Find returns a copy of the task with the given id.
func Find(tasks []models.Task, id string) (models.Task, bool) {
	idx := indexOf(tasks, id)
	if idx == -1 {
		return models.Task{}, false
	}
	return tasks[idx], true
}

func indexOf(tasks []models.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// clone always allocates, even for a nil or empty input.
func clone(tasks []models.Task) []models.Task {
	next := make([]models.Task, len(tasks))
	copy(next, tasks)
	return next
}

// At wraps a clock value for the Now field of the options structs.
func At(now int64) *int64 {
	return &now
}

func nowOr(now *int64) int64 {
	if now == nil {
		return SystemClock()
	}
	return *now
}

func valueOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
