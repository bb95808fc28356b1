package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nakachan-ing/taskflow-cli/internal/model"
	"github.com/nakachan-ing/taskflow-cli/internal/util"
)

var (
	// ErrEmptyTitle rejects a create or update that would leave a task
	// without a title. No mutation happens.
	ErrEmptyTitle = errors.New("task title must not be empty")

	// ErrTaskNotFound marks a mutation aimed at an id that is not in the
	// collection.
	ErrTaskNotFound = errors.New("task not found")
)

func TasksJsonPath(config model.Config) string {
	return filepath.Join(config.DataDir, "tasks.json")
}

// TaskStore owns the in-memory task collection. Every mutation refreshes
// updatedAt, recomputes category counts, and rewrites the whole blob
// before returning. A failed write keeps the in-memory state live and
// reports the persistence error to the caller.
type TaskStore struct {
	tasks      []model.Task
	categories []model.Category
	jsonPath   string
	now        func() time.Time
}

// NewTaskStore loads tasks.json and categories.json from the data
// directory. A malformed blob is reported through the returned error but
// the store starts empty and stays usable; the blob is only rewritten on
// the next successful mutation.
func NewTaskStore(config model.Config) (*TaskStore, error) {
	if err := os.MkdirAll(config.DataDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create data directory: %v", err)
	}

	s := &TaskStore{
		jsonPath: TasksJsonPath(config),
		now:      time.Now,
	}

	var loadErr error

	categories, err := LoadCategories(config)
	if err != nil {
		categories = model.DefaultCategories()
		loadErr = err
	}
	s.categories = categories

	if err := LoadJson(s.jsonPath, &s.tasks); err != nil {
		s.tasks = []model.Task{}
		loadErr = fmt.Errorf("❌ Error loading tasks from JSON: %w", err)
	}

	s.categories = RecomputeCounts(s.tasks, s.categories)
	return s, loadErr
}

// Tasks returns a copy of the collection in append order.
func (s *TaskStore) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Categories returns the registry with live open-task counts.
func (s *TaskStore) Categories() []model.Category {
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Stats recomputes the dashboard counters from the full collection.
func (s *TaskStore) Stats() model.Stats {
	return util.ComputeStats(s.tasks, s.now())
}

// Get looks up a task by exact id.
func (s *TaskStore) Get(id string) (model.Task, bool) {
	for _, task := range s.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return model.Task{}, false
}

// ResolveID expands an id prefix to the full task id. Exact matches win;
// otherwise the prefix must be unambiguous.
func (s *TaskStore) ResolveID(prefix string) (string, error) {
	if _, ok := s.Get(prefix); ok {
		return prefix, nil
	}

	var matched string
	for _, task := range s.tasks {
		if strings.HasPrefix(task.ID, prefix) {
			if matched != "" {
				return "", fmt.Errorf("task id %q is ambiguous", prefix)
			}
			matched = task.ID
		}
	}
	if matched == "" {
		return "", ErrTaskNotFound
	}
	return matched, nil
}

func (s *TaskStore) Create(draft model.TaskDraft) (model.Task, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return model.Task{}, ErrEmptyTitle
	}

	priority := draft.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	now := s.now().Format(util.TimestampLayout)
	task := model.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(draft.Description),
		DueDate:     draft.DueDate,
		Priority:    priority,
		CategoryID:  draft.CategoryID,
		ParentID:    draft.ParentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.tasks = append(s.tasks, task)
	return task, s.commit()
}

func (s *TaskStore) Update(id string, patch model.TaskPatch) (model.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, ErrTaskNotFound
	}

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return model.Task{}, ErrEmptyTitle
	}

	task := s.tasks[i]
	if patch.Title != nil {
		task.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		task.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.DueDate != nil {
		task.DueDate = *patch.DueDate
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.CategoryID != nil {
		task.CategoryID = *patch.CategoryID
	}
	task.UpdatedAt = s.now().Format(util.TimestampLayout)

	s.tasks[i] = task
	return task, s.commit()
}

func (s *TaskStore) ToggleComplete(id string) (model.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, ErrTaskNotFound
	}

	s.tasks[i].IsCompleted = !s.tasks[i].IsCompleted
	s.tasks[i].UpdatedAt = s.now().Format(util.TimestampLayout)
	return s.tasks[i], s.commit()
}

// Delete removes the task unconditionally. Deleting a missing id is a
// no-op, not an error.
func (s *TaskStore) Delete(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return s.commit()
}

// Reorder assigns increasing order values to exactly the tasks named in
// orderedIDs, which is the currently filtered view in its new display
// order. Tasks outside that view keep their prior order (or none), so
// reordering a filtered subset never corrupts the rest of the
// collection. Unknown ids are skipped.
func (s *TaskStore) Reorder(orderedIDs []string) error {
	now := s.now().Format(util.TimestampLayout)
	changed := false

	for position, id := range orderedIDs {
		i := s.indexOf(id)
		if i < 0 {
			continue
		}
		order := position
		s.tasks[i].Order = &order
		s.tasks[i].UpdatedAt = now
		changed = true
	}

	if !changed {
		return nil
	}
	return s.commit()
}

func (s *TaskStore) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// commit recomputes the derived category counts and rewrites the blob.
// The recompute happens even when the write fails so the in-memory view
// stays consistent with the mutation.
func (s *TaskStore) commit() error {
	s.categories = RecomputeCounts(s.tasks, s.categories)

	if err := SaveJson(s.tasks, s.jsonPath); err != nil {
		return fmt.Errorf("❌ Failed to save tasks, changes are kept in memory only: %w", err)
	}
	return nil
}
