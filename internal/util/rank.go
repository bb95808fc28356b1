package util

import (
	"sort"

	"github.com/nakachan-ing/taskflow-cli/internal/model"
)

// SortTasks orders an already-filtered subset for display:
//  1. incomplete tasks before completed ones
//  2. when both tasks carry a manual order, numerically ascending
//  3. otherwise priority, high before low
//
// Ties keep their input order (the sort is stable). The input slice is
// left untouched.
func SortTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		if a.IsCompleted != b.IsCompleted {
			return !a.IsCompleted
		}

		if a.HasOrder() && b.HasOrder() {
			return *a.Order < *b.Order
		}

		return a.Priority.Rank() > b.Priority.Rank()
	})

	return out
}
