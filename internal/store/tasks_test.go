package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nakachan-ing/taskflow-cli/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) model.Config {
	t.Helper()
	config := model.Config{DataDir: t.TempDir(), Editor: "true"}
	return config
}

func newTestStore(t *testing.T) *TaskStore {
	t.Helper()
	s, err := NewTaskStore(testConfig(t))
	require.NoError(t, err)
	return s
}

func TestTaskStore_CreateAssignsIdentityAndTimestamps(t *testing.T) {
	s := newTestStore(t)

	task, err := s.Create(model.TaskDraft{Title: "  pick up eggs  ", CategoryID: "1"})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "pick up eggs", task.Title)
	assert.False(t, task.IsCompleted)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	assert.Nil(t, task.Order)

	other, err := s.Create(model.TaskDraft{Title: "water plants", CategoryID: "1"})
	require.NoError(t, err)
	assert.NotEqual(t, task.ID, other.ID)
}

func TestTaskStore_CreateRejectsEmptyTitle(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create(model.TaskDraft{Title: "   "})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	// Validation failure must not mutate the collection
	assert.Empty(t, s.Tasks())
}

func TestTaskStore_ToggleCompleteIsItsOwnInverse(t *testing.T) {
	s := newTestStore(t)

	clock := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	created, err := s.Create(model.TaskDraft{Title: "call dentist", CategoryID: "1"})
	require.NoError(t, err)

	clock = clock.Add(time.Hour)
	toggled, err := s.ToggleComplete(created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsCompleted)
	assert.NotEqual(t, created.UpdatedAt, toggled.UpdatedAt)

	clock = clock.Add(time.Hour)
	restored, err := s.ToggleComplete(created.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsCompleted)

	// Everything but updatedAt is back to the original
	restored.UpdatedAt = created.UpdatedAt
	assert.Equal(t, created, restored)
}

func TestTaskStore_ToggleCompleteNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ToggleComplete("missing")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskStore_UpdateMergesPatch(t *testing.T) {
	s := newTestStore(t)

	clock := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	created, err := s.Create(model.TaskDraft{Title: "draft report", CategoryID: "2", DueDate: "2025-06-20"})
	require.NoError(t, err)

	clock = clock.Add(time.Hour)
	newTitle := "draft quarterly report"
	newPriority := model.PriorityHigh
	updated, err := s.Update(created.ID, model.TaskPatch{Title: &newTitle, Priority: &newPriority})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "draft quarterly report", updated.Title)
	assert.Equal(t, model.PriorityHigh, updated.Priority)
	assert.Equal(t, "2025-06-20", updated.DueDate)
	assert.NotEqual(t, created.UpdatedAt, updated.UpdatedAt)

	// An explicit empty due date clears the field
	clear := ""
	updated, err = s.Update(created.ID, model.TaskPatch{DueDate: &clear})
	require.NoError(t, err)
	assert.Empty(t, updated.DueDate)
}

func TestTaskStore_UpdateNotFound(t *testing.T) {
	s := newTestStore(t)

	title := "anything"
	_, err := s.Update("missing", model.TaskPatch{Title: &title})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskStore_UpdateRejectsEmptyTitle(t *testing.T) {
	s := newTestStore(t)

	created, err := s.Create(model.TaskDraft{Title: "keep me", CategoryID: "1"})
	require.NoError(t, err)

	empty := "  "
	_, err = s.Update(created.ID, model.TaskPatch{Title: &empty})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	kept, _ := s.Get(created.ID)
	assert.Equal(t, "keep me", kept.Title)
}

func TestTaskStore_DeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	created, err := s.Create(model.TaskDraft{Title: "temporary", CategoryID: "1"})
	require.NoError(t, err)

	assert.NoError(t, s.Delete(created.ID))
	assert.Empty(t, s.Tasks())

	// Deleting again is a no-op, not an error
	assert.NoError(t, s.Delete(created.ID))
	assert.NoError(t, s.Delete("never existed"))
}

func TestTaskStore_ReorderTouchesOnlyNamedTasks(t *testing.T) {
	s := newTestStore(t)

	t1, err := s.Create(model.TaskDraft{Title: "t1", CategoryID: "1"})
	require.NoError(t, err)
	t2, err := s.Create(model.TaskDraft{Title: "t2", CategoryID: "1"})
	require.NoError(t, err)
	t3, err := s.Create(model.TaskDraft{Title: "t3", CategoryID: "2"})
	require.NoError(t, err)

	// The filtered view holds t1, t2; the user drags t2 above t1
	require.NoError(t, s.Reorder([]string{t2.ID, t1.ID}))

	got1, _ := s.Get(t1.ID)
	got2, _ := s.Get(t2.ID)
	got3, _ := s.Get(t3.ID)

	require.True(t, got1.HasOrder())
	require.True(t, got2.HasOrder())
	assert.Less(t, *got2.Order, *got1.Order)

	// t3 was outside the view and keeps no order at all
	assert.False(t, got3.HasOrder())
}

func TestTaskStore_ReorderUnknownIdsSkipped(t *testing.T) {
	s := newTestStore(t)

	t1, err := s.Create(model.TaskDraft{Title: "t1", CategoryID: "1"})
	require.NoError(t, err)

	require.NoError(t, s.Reorder([]string{"ghost", t1.ID}))

	got, _ := s.Get(t1.ID)
	require.True(t, got.HasOrder())
	assert.Equal(t, 1, *got.Order)
}

func TestTaskStore_PersistsAcrossReopen(t *testing.T) {
	config := testConfig(t)

	s, err := NewTaskStore(config)
	require.NoError(t, err)

	created, err := s.Create(model.TaskDraft{Title: "survive restart", CategoryID: "3", Priority: model.PriorityHigh})
	require.NoError(t, err)
	_, err = s.ToggleComplete(created.ID)
	require.NoError(t, err)

	reopened, err := NewTaskStore(config)
	require.NoError(t, err)

	tasks := reopened.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, created.ID, tasks[0].ID)
	assert.Equal(t, "survive restart", tasks[0].Title)
	assert.True(t, tasks[0].IsCompleted)
	assert.Equal(t, model.PriorityHigh, tasks[0].Priority)
}

func TestTaskStore_MalformedBlobFailsSoft(t *testing.T) {
	config := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(config.DataDir, "tasks.json"), []byte("{not json"), 0644))

	s, err := NewTaskStore(config)
	assert.Error(t, err)

	// The store stays usable from an empty collection
	require.NotNil(t, s)
	assert.Empty(t, s.Tasks())

	_, err = s.Create(model.TaskDraft{Title: "fresh start", CategoryID: "1"})
	assert.NoError(t, err)
}

func TestTaskStore_CategoryCountsRecomputedOnEveryMutation(t *testing.T) {
	s := newTestStore(t)

	t1, err := s.Create(model.TaskDraft{Title: "one", CategoryID: "1"})
	require.NoError(t, err)
	_, err = s.Create(model.TaskDraft{Title: "two", CategoryID: "1"})
	require.NoError(t, err)

	assert.Equal(t, 2, openCount(t, s, "1"))

	_, err = s.ToggleComplete(t1.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, openCount(t, s, "1"))

	require.NoError(t, s.Delete(t1.ID))
	assert.Equal(t, 1, openCount(t, s, "1"))
}

func TestTaskStore_StatsIdentity(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create(model.TaskDraft{Title: "a", CategoryID: "1"})
	require.NoError(t, err)
	done, err := s.Create(model.TaskDraft{Title: "b", CategoryID: "1"})
	require.NoError(t, err)
	_, err = s.ToggleComplete(done.ID)
	require.NoError(t, err)

	stats := s.Stats()
	assert.Equal(t, len(s.Tasks()), stats.Total)
	assert.Equal(t, stats.Total, stats.Completed+stats.Pending)
}

func TestTaskStore_ResolveID(t *testing.T) {
	s := newTestStore(t)

	created, err := s.Create(model.TaskDraft{Title: "findable", CategoryID: "1"})
	require.NoError(t, err)

	full, err := s.ResolveID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, full)

	byPrefix, err := s.ResolveID(created.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, created.ID, byPrefix)

	_, err = s.ResolveID("zzzz")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func openCount(t *testing.T, s *TaskStore, categoryID string) int {
	t.Helper()
	for _, category := range s.Categories() {
		if category.ID == categoryID {
			return category.TaskCount
		}
	}
	t.Fatalf("category %s not found", categoryID)
	return 0
}
