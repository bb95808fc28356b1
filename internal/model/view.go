package model

// Special filter ids usable as ViewSelector.ActiveCategory alongside
// category ids.
const (
	FilterAll       = "all"
	FilterToday     = "today"
	FilterCompleted = "completed"
	FilterOverdue   = "overdue"
)

// ViewSelector is the transient view state handed to the filter engine.
// It is a parameter object, never persisted. Zero values mean no filter.
// This struct lives in model for reuse by store/util/cmd layers.
type ViewSelector struct {
	ActiveCategory string
	SearchTerm     string
}
