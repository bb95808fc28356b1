package util

import "time"

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = time.RFC3339
)

// ParseDueDate parses a yyyy-mm-dd due date. ok is false when the field
// is empty or malformed.
func ParseDueDate(dueDate string) (time.Time, bool) {
	if dueDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, dueDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return truncateToDay(a).Equal(truncateToDay(b))
}

// BeforeDay reports whether a falls on a calendar day strictly before b.
// Time of day is ignored, so a task due today is never "before" today.
func BeforeDay(a, b time.Time) bool {
	return truncateToDay(a).Before(truncateToDay(b))
}

// DueLabel renders a due date the way the task list shows it:
// Today / Tomorrow / Overdue, otherwise a short date.
func DueLabel(dueDate string, now time.Time) string {
	due, ok := ParseDueDate(dueDate)
	if !ok {
		return ""
	}
	switch {
	case SameDay(due, now):
		return "Today"
	case SameDay(due, now.AddDate(0, 0, 1)):
		return "Tomorrow"
	case BeforeDay(due, now):
		return "Overdue"
	default:
		return due.Format("Jan 2")
	}
}
