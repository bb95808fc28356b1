package util

import (
	"time"

	"github.com/nakachan-ing/taskflow-cli/internal/model"
)

// ComputeStats derives the dashboard counters from the full collection,
// independent of any active filter. Overdue uses a date-only comparison,
// so a task due today is never counted overdue.
func ComputeStats(tasks []model.Task, now time.Time) model.Stats {
	stats := model.Stats{Total: len(tasks)}

	for _, task := range tasks {
		if task.IsCompleted {
			stats.Completed++
		}
		if due, ok := ParseDueDate(task.DueDate); ok && BeforeDay(due, now) && !task.IsCompleted {
			stats.Overdue++
		}
	}

	stats.Pending = stats.Total - stats.Completed
	return stats
}

// TodayCount counts tasks due on the current calendar day, completed or
// not. Shown as the sidebar's Today badge.
func TodayCount(tasks []model.Task, now time.Time) int {
	count := 0
	for _, task := range tasks {
		if due, ok := ParseDueDate(task.DueDate); ok && SameDay(due, now) {
			count++
		}
	}
	return count
}
