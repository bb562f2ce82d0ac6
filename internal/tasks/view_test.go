package tasks

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-todo-local/internal/models"
)

func TestStatusLabel(t *testing.T) {
	tests := map[string]string{
		"todo":        "To do",
		"in-progress": "In progress",
		"blocked":     "Blocked",
		"done":        "Done",
		"waiting":     "waiting",
		"":            "",
	}

	for status, want := range tests {
		assert.Equal(t, want, StatusLabel(status), status)
	}
}

func TestPriorityLabel(t *testing.T) {
	assert.Equal(t, "High", PriorityLabel("high"))
	assert.Equal(t, "Low", PriorityLabel("low"))
	assert.Equal(t, "", PriorityLabel(""))
}

func TestSortForDisplay(t *testing.T) {
	in := []models.Task{
		{ID: "done-high", Priority: "high", Completed: true, CreatedAt: 9},
		{ID: "low-old", Priority: "low", CreatedAt: 1},
		{ID: "high-old", Priority: "high", CreatedAt: 2},
		{ID: "odd", Priority: "urgent", CreatedAt: 8},
		{ID: "high-new", Priority: "high", CreatedAt: 5},
		{ID: "medium", Priority: "medium", CreatedAt: 3},
		{ID: "done-low", Priority: "low", Completed: true, CreatedAt: 4},
	}

	sorted := SortForDisplay(in)

	ids := make([]string, len(sorted))
	for i, task := range sorted {
		ids[i] = task.ID
	}
	assert.Equal(t, []string{
		"high-new", "high-old", "medium", "low-old", "odd",
		"done-high", "done-low",
	}, ids)
	assert.Equal(t, "done-high", in[0].ID)
}

func TestViews_JSON(t *testing.T) {
	views := Views([]models.Task{{ID: "a", Topic: "t", Priority: "high", Status: "in-progress"}})

	b, err := json.Marshal(views)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "a", decoded[0]["id"])
	assert.Equal(t, "In progress", decoded[0]["statusLabel"])
	assert.Equal(t, "High", decoded[0]["priorityLabel"])
	assert.Equal(t, false, decoded[0]["completed"])
}
