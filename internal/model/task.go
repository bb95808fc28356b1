package model

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank maps a priority to its sort weight. Unknown or missing
// priorities rank below low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	IsCompleted bool     `json:"isCompleted"`
	DueDate     string   `json:"dueDate,omitempty"` // yyyy-mm-dd
	Priority    Priority `json:"priority"`
	CategoryID  string   `json:"categoryId"`
	ParentID    string   `json:"parentId,omitempty"`
	CreatedAt   string   `json:"createdAt"` // RFC3339
	UpdatedAt   string   `json:"updatedAt"` // RFC3339
	Order       *int     `json:"order,omitempty"`
}

// HasOrder reports whether the task has been placed by a manual reorder.
// Tasks without an explicit order fall back to priority ranking.
func (t *Task) HasOrder() bool {
	return t.Order != nil
}

// TaskDraft is the input for creating a task.
type TaskDraft struct {
	Title       string
	Description string
	DueDate     string
	Priority    Priority
	CategoryID  string
	ParentID    string
}

// TaskPatch is a partial update. Nil pointers mean "leave the field alone";
// an empty DueDate string clears the due date.
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *string
	Priority    *Priority
	CategoryID  *string
}

type Stats struct {
	Total     int
	Completed int
	Pending   int
	Overdue   int
}
