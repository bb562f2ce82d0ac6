package tasks

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/adanyl0v/go-todo-local/internal/models"
)

var statusLabels = map[string]string{
	models.StatusTodo:       "To do",
	models.StatusInProgress: "In progress",
	models.StatusBlocked:    "Blocked",
	models.StatusDone:       "Done",
}

// StatusLabel returns the display label of status, or status itself
// when it is not a known value.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

func PriorityLabel(priority string) string {
	r, size := utf8.DecodeRuneInString(priority)
	if size == 0 {
		return priority
	}
	return string(unicode.ToUpper(r)) + priority[size:]
}

func priorityRank(priority string) int {
	switch priority {
	case models.PriorityHigh:
		return 0
	case models.PriorityMedium:
		return 1
	case models.PriorityLow:
		return 2
	default:
		return 3
	}
}

// SortForDisplay returns a sorted copy of tasks: incomplete before
// complete, then by priority, then newest first.
func SortForDisplay(tasks []models.Task) []models.Task {
	sorted := clone(tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if ra, rb := priorityRank(a.Priority), priorityRank(b.Priority); ra != rb {
			return ra < rb
		}
		return a.CreatedAt > b.CreatedAt
	})
	return sorted
}

type View struct {
	models.Task   `yaml:",inline"`
	StatusLabel   string `json:"statusLabel" yaml:"statusLabel"`
	PriorityLabel string `json:"priorityLabel" yaml:"priorityLabel"`
}

func NewView(task models.Task) View {
	return View{
		Task:          task,
		StatusLabel:   StatusLabel(task.Status),
		PriorityLabel: PriorityLabel(task.Priority),
	}
}

// Views sorts tasks for display and attaches their labels.
func Views(tasks []models.Task) []View {
	sorted := SortForDisplay(tasks)
	views := make([]View, len(sorted))
	for i, task := range sorted {
		views[i] = NewView(task)
	}
	return views
}
