package util

import (
	"testing"

	"github.com/nakachan-ing/taskflow-cli/internal/model"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func TestSortTasks_CompletedLastThenPriority(t *testing.T) {
	tasks := []model.Task{
		{ID: "a", Title: "A", Priority: model.PriorityLow},
		{ID: "b", Title: "B", Priority: model.PriorityHigh},
		{ID: "c", Title: "C", Priority: model.PriorityMedium, IsCompleted: true},
	}

	got := SortTasks(tasks)
	assert.Equal(t, []string{"b", "a", "c"}, ids(got))
}

func TestSortTasks_ManualOrderWinsWhenBothHaveIt(t *testing.T) {
	tasks := []model.Task{
		{ID: "a", Priority: model.PriorityHigh, Order: intPtr(2)},
		{ID: "b", Priority: model.PriorityLow, Order: intPtr(0)},
		{ID: "c", Priority: model.PriorityMedium, Order: intPtr(1)},
	}

	got := SortTasks(tasks)
	assert.Equal(t, []string{"b", "c", "a"}, ids(got))
}

func TestSortTasks_MixedOrderFallsBackToPriority(t *testing.T) {
	tasks := []model.Task{
		{ID: "ordered", Priority: model.PriorityLow, Order: intPtr(0)},
		{ID: "unordered", Priority: model.PriorityHigh},
	}

	// Only one side carries an order, so priority decides
	got := SortTasks(tasks)
	assert.Equal(t, []string{"unordered", "ordered"}, ids(got))
}

func TestSortTasks_UnknownPriorityRanksLowest(t *testing.T) {
	tasks := []model.Task{
		{ID: "odd", Priority: "urgent"},
		{ID: "low", Priority: model.PriorityLow},
	}

	got := SortTasks(tasks)
	assert.Equal(t, []string{"low", "odd"}, ids(got))
}

func TestSortTasks_StableForFullTies(t *testing.T) {
	tasks := []model.Task{
		{ID: "first", Priority: model.PriorityMedium},
		{ID: "second", Priority: model.PriorityMedium},
		{ID: "third", Priority: model.PriorityMedium},
	}

	got := SortTasks(tasks)
	assert.Equal(t, []string{"first", "second", "third"}, ids(got))
}

func TestSortTasks_DoesNotMutateInput(t *testing.T) {
	tasks := []model.Task{
		{ID: "a", Priority: model.PriorityLow},
		{ID: "b", Priority: model.PriorityHigh},
	}

	_ = SortTasks(tasks)
	assert.Equal(t, []string{"a", "b"}, ids(tasks))
}

func TestSortTasks_CompletedStillSortAmongThemselves(t *testing.T) {
	tasks := []model.Task{
		{ID: "doneLow", Priority: model.PriorityLow, IsCompleted: true},
		{ID: "doneHigh", Priority: model.PriorityHigh, IsCompleted: true},
		{ID: "open", Priority: model.PriorityLow},
	}

	got := SortTasks(tasks)
	assert.Equal(t, []string{"open", "doneHigh", "doneLow"}, ids(got))
}
