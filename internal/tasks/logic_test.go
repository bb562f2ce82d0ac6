package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-todo-local/internal/models"
)

func str(s string) *string {
	return &s
}

func payload(topic, priority, status string) models.TaskPayload {
	return models.TaskPayload{
		Topic:    str(topic),
		Priority: str(priority),
		Status:   str(status),
	}
}

func TestNormalize_Defaults(t *testing.T) {
	fields := Normalize(models.TaskPayload{})

	assert.Equal(t, models.TaskFields{
		Topic:       "",
		Priority:    models.PriorityMedium,
		Status:      models.StatusTodo,
		Description: "",
	}, fields)
}

func TestNormalize_TrimsTopicAndDescription(t *testing.T) {
	fields := Normalize(models.TaskPayload{
		Topic:       str("  Buy milk \n"),
		Description: str("\t two litres "),
		Priority:    str(models.PriorityLow),
		Status:      str(models.StatusBlocked),
	})

	assert.Equal(t, "Buy milk", fields.Topic)
	assert.Equal(t, "two litres", fields.Description)
	assert.Equal(t, models.PriorityLow, fields.Priority)
	assert.Equal(t, models.StatusBlocked, fields.Status)
}

func TestIsValidNew(t *testing.T) {
	tests := []struct {
		name  string
		topic *string
		want  bool
	}{
		{"absent", nil, false},
		{"empty", str(""), false},
		{"whitespace", str("   \t"), false},
		{"text", str("Buy milk"), true},
		{"padded text", str("  x  "), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidNew(models.TaskPayload{Topic: tt.topic}))
		})
	}
}

func TestAdd_Scenario(t *testing.T) {
	res := Add(nil, payload("Buy milk", "high", "todo"), AddOptions{Now: At(1000), ID: "a"})

	require.True(t, res.Added)
	require.NotNil(t, res.Task)
	assert.Equal(t, []models.Task{{
		ID:          "a",
		Topic:       "Buy milk",
		Priority:    "high",
		Status:      "todo",
		Description: "",
		Completed:   false,
		CreatedAt:   1000,
		UpdatedAt:   1000,
	}}, res.Tasks)
	assert.Equal(t, res.Tasks[0], *res.Task)
}

func TestAdd_RejectsEmptyTopic(t *testing.T) {
	existing := []models.Task{{ID: "x", Topic: "keep"}}

	for _, topic := range []string{"", " ", "\t\n "} {
		res := Add(existing, payload(topic, "medium", "todo"), AddOptions{Now: At(1), ID: "y"})

		assert.False(t, res.Added)
		assert.Nil(t, res.Task)
		assert.Equal(t, existing, res.Tasks)
	}
}

func TestAdd_DoneStatusIsCompleted(t *testing.T) {
	res := Add(nil, payload("ship it", "low", "done"), AddOptions{Now: At(5), ID: "d"})

	require.True(t, res.Added)
	assert.True(t, res.Task.Completed)
}

func TestAdd_DoesNotMutateInput(t *testing.T) {
	existing := make([]models.Task, 1, 4)
	existing[0] = models.Task{ID: "x", Topic: "keep"}

	res := Add(existing, payload("new", "high", "todo"), AddOptions{Now: At(1), ID: "n"})

	require.Len(t, res.Tasks, 2)
	assert.Len(t, existing, 1)
	assert.Empty(t, existing[:2][1].ID)
	res.Tasks[0].Topic = "changed"
	assert.Equal(t, "keep", existing[0].Topic)
}

func TestAdd_DefaultsIDAndTime(t *testing.T) {
	prev := DefaultIDs
	DefaultIDs = NewSequenceIDs("generated")
	t.Cleanup(func() { DefaultIDs = prev })

	res := Add(nil, models.TaskPayload{Topic: str("x")}, AddOptions{})

	require.True(t, res.Added)
	assert.Equal(t, "generated", res.Task.ID)
	assert.NotZero(t, res.Task.CreatedAt)
	assert.Equal(t, res.Task.CreatedAt, res.Task.UpdatedAt)
}

func TestAdd_HonorsZeroNow(t *testing.T) {
	res := Add(nil, payload("epoch", "low", "todo"), AddOptions{Now: At(0), ID: "z"})

	require.True(t, res.Added)
	assert.Zero(t, res.Task.CreatedAt)
	assert.Zero(t, res.Task.UpdatedAt)

	toggled := ToggleComplete(res.Tasks, "z", ToggleOptions{Now: At(0)})
	assert.Zero(t, toggled.Tasks[0].UpdatedAt)

	updated := Update(res.Tasks, "z", payload("epoch", "high", "todo"), UpdateOptions{Now: At(0)})
	assert.Zero(t, updated.Tasks[0].UpdatedAt)
}

func TestAdd_ThenDelete(t *testing.T) {
	start := []models.Task{{ID: "x", Topic: "keep"}}

	added := Add(start, payload("temp", "low", "todo"), AddOptions{Now: At(1), ID: "tmp"})
	require.True(t, added.Added)

	deleted := DeleteByID(added.Tasks, "tmp")

	assert.True(t, deleted.Deleted)
	assert.Len(t, deleted.Tasks, len(start))
	_, found := Find(deleted.Tasks, "tmp")
	assert.False(t, found)
}

func TestUpdate_ReplacesFields(t *testing.T) {
	start := []models.Task{{
		ID: "a", Topic: "old", Priority: "low", Status: "todo",
		Description: "d", CreatedAt: 1, UpdatedAt: 1,
	}}

	res := Update(start, "a", models.TaskPayload{
		Topic:    str("  new "),
		Priority: str("high"),
		Status:   str("blocked"),
	}, UpdateOptions{Now: At(7)})

	require.True(t, res.Updated)
	assert.Equal(t, models.Task{
		ID: "a", Topic: "new", Priority: "high", Status: "blocked",
		Description: "", CreatedAt: 1, UpdatedAt: 7,
	}, res.Tasks[0])
	assert.Equal(t, "old", start[0].Topic)
}

func TestUpdate_DoneForcesCompleted(t *testing.T) {
	start := []models.Task{{ID: "a", Topic: "t", Status: "todo"}}

	res := Update(start, "a", payload("t", "medium", "done"), UpdateOptions{Now: At(2)})

	require.True(t, res.Updated)
	assert.True(t, res.Tasks[0].Completed)
}

func TestUpdate_LeavingDoneKeepsCompleted(t *testing.T) {
	start := []models.Task{{ID: "a", Topic: "t", Status: "done", Completed: true}}

	res := Update(start, "a", payload("t", "medium", "in-progress"), UpdateOptions{Now: At(2)})

	require.True(t, res.Updated)
	assert.Equal(t, "in-progress", res.Tasks[0].Status)
	assert.True(t, res.Tasks[0].Completed)
}

func TestUpdate_NoOps(t *testing.T) {
	start := []models.Task{{ID: "a", Topic: "t", Priority: "high", Status: "todo", UpdatedAt: 1}}

	t.Run("empty topic", func(t *testing.T) {
		res := Update(start, "a", payload("  ", "low", "done"), UpdateOptions{Now: At(9)})

		assert.False(t, res.Updated)
		assert.Equal(t, start, res.Tasks)
	})

	t.Run("unknown id", func(t *testing.T) {
		res := Update(start, "missing", payload("x", "low", "done"), UpdateOptions{Now: At(9)})

		assert.False(t, res.Updated)
		assert.Equal(t, start, res.Tasks)
	})
}

func TestToggleComplete_Scenario(t *testing.T) {
	created := Add(nil, payload("Buy milk", "high", "todo"), AddOptions{Now: At(1000), ID: "a"})

	res := ToggleComplete(created.Tasks, "a", ToggleOptions{Now: At(2000)})

	require.True(t, res.Toggled)
	assert.True(t, res.Completed)
	assert.True(t, res.Tasks[0].Completed)
	assert.Equal(t, models.StatusDone, res.Tasks[0].Status)
	assert.Equal(t, int64(2000), res.Tasks[0].UpdatedAt)
	assert.Equal(t, int64(1000), res.Tasks[0].CreatedAt)
	assert.False(t, created.Tasks[0].Completed)
}

func TestToggleComplete_Twice(t *testing.T) {
	tests := []struct {
		name          string
		start         models.Task
		wantStatus    string
		wantCompleted bool
	}{
		{
			name:       "from todo",
			start:      models.Task{ID: "a", Topic: "t", Status: "todo"},
			wantStatus: "todo",
		},
		{
			// completing forces done, so the way back lands on todo
			name:       "from blocked",
			start:      models.Task{ID: "a", Topic: "t", Status: "blocked"},
			wantStatus: "todo",
		},
		{
			name:       "from done",
			start:      models.Task{ID: "a", Topic: "t", Status: "done", Completed: true},
			wantStatus: "done",
			// done -> todo -> done
			wantCompleted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := ToggleComplete([]models.Task{tt.start}, "a", ToggleOptions{Now: At(1)})
			twice := ToggleComplete(once.Tasks, "a", ToggleOptions{Now: At(2)})

			require.True(t, twice.Toggled)
			assert.Equal(t, tt.wantStatus, twice.Tasks[0].Status)
			assert.Equal(t, tt.wantCompleted, twice.Tasks[0].Completed)
		})
	}
}

func TestToggleComplete_BlockedCompletedThenUncompleted(t *testing.T) {
	// Update can move a completed task back to blocked without clearing
	// Completed. Un-completing it keeps blocked.
	start := []models.Task{{ID: "a", Topic: "t", Status: "blocked", Completed: true}}

	res := ToggleComplete(start, "a", ToggleOptions{Now: At(3)})

	require.True(t, res.Toggled)
	assert.False(t, res.Completed)
	assert.Equal(t, "blocked", res.Tasks[0].Status)
}

func TestToggleComplete_FromDoneUncompletes(t *testing.T) {
	start := []models.Task{{ID: "a", Topic: "t", Status: "done", Completed: true}}

	res := ToggleComplete(start, "a", ToggleOptions{Now: At(3)})

	assert.False(t, res.Completed)
	assert.Equal(t, "todo", res.Tasks[0].Status)
}

func TestToggleComplete_UnknownID(t *testing.T) {
	start := []models.Task{{ID: "a", Topic: "t"}}

	res := ToggleComplete(start, "b", ToggleOptions{Now: At(3)})

	assert.False(t, res.Toggled)
	assert.Equal(t, start, res.Tasks)
}

func TestDeleteByID(t *testing.T) {
	start := []models.Task{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	res := DeleteByID(start, "b")

	assert.True(t, res.Deleted)
	assert.Equal(t, []models.Task{{ID: "a"}, {ID: "c"}}, res.Tasks)
	assert.Len(t, start, 3)
}

func TestDeleteByID_Scenario(t *testing.T) {
	created := Add(nil, payload("Buy milk", "high", "todo"), AddOptions{Now: At(1000), ID: "a"})

	res := DeleteByID(created.Tasks, "a")

	assert.True(t, res.Deleted)
	assert.Empty(t, res.Tasks)
}

func TestDeleteByID_UnknownID(t *testing.T) {
	start := []models.Task{{ID: "a"}}

	res := DeleteByID(start, "z")

	assert.False(t, res.Deleted)
	assert.Equal(t, start, res.Tasks)
}
