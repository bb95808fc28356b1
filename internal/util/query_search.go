package util

import (
	"strings"
	"time"

	"github.com/nakachan-ing/taskflow-cli/internal/model"
)

// FilterTasks applies the view selector, then the free-text search, and
// returns the matching subset in input order (pre-sort). The reference
// time is passed in so the today/overdue predicates stay testable.
func FilterTasks(tasks []model.Task, selector model.ViewSelector, now time.Time) []model.Task {
	filtered := tasks

	if selector.ActiveCategory != "" && selector.ActiveCategory != model.FilterAll {
		var matched []model.Task
		for _, task := range filtered {
			if matchesSelector(task, selector.ActiveCategory, now) {
				matched = append(matched, task)
			}
		}
		filtered = matched
	}

	return FullTextSearch(filtered, selector.SearchTerm)
}

func matchesSelector(task model.Task, activeCategory string, now time.Time) bool {
	switch activeCategory {
	case model.FilterCompleted:
		return task.IsCompleted
	case model.FilterToday:
		due, ok := ParseDueDate(task.DueDate)
		return ok && SameDay(due, now)
	case model.FilterOverdue:
		due, ok := ParseDueDate(task.DueDate)
		return ok && BeforeDay(due, now) && !task.IsCompleted
	default:
		// A dangling categoryId is treated as "no category" and simply
		// never matches.
		return task.CategoryID == activeCategory
	}
}

// FullTextSearch restricts tasks to those whose title or description
// contains the query, case-insensitively. An empty query is a no-op.
func FullTextSearch(tasks []model.Task, query string) []model.Task {
	if query == "" {
		return tasks
	}

	query = strings.ToLower(query)
	var filteredTasks []model.Task

	for _, task := range tasks {
		if strings.Contains(strings.ToLower(task.Title), query) ||
			strings.Contains(strings.ToLower(task.Description), query) {
			filteredTasks = append(filteredTasks, task)
		}
	}

	return filteredTasks
}

// Subtasks returns the tasks whose parentId references the given task.
func Subtasks(tasks []model.Task, parentID string) []model.Task {
	var children []model.Task
	for _, task := range tasks {
		if task.ParentID != "" && task.ParentID == parentID {
			children = append(children, task)
		}
	}
	return children
}
