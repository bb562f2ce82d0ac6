package models

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusBlocked    = "blocked"
	StatusDone       = "done"
)

// Task is a single to-do item as it is persisted in a storage slot.
// CreatedAt and UpdatedAt are milliseconds since the Unix epoch.
type Task struct {
	ID          string `json:"id" yaml:"id"`
	Topic       string `json:"topic" yaml:"topic"`
	Priority    string `json:"priority" yaml:"priority"`
	Status      string `json:"status" yaml:"status"`
	Description string `json:"description" yaml:"description"`
	Completed   bool   `json:"completed" yaml:"completed"`
	CreatedAt   int64  `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt" yaml:"updatedAt"`
}

// TaskPayload holds raw, user supplied task fields. A nil field is absent.
type TaskPayload struct {
	Topic       *string `json:"topic,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
	Description *string `json:"description,omitempty"`
}

// TaskFields is a normalized TaskPayload.
type TaskFields struct {
	Topic       string
	Priority    string
	Status      string
	Description string
}
