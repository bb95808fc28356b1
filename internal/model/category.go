package model

type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Icon      string `json:"icon"`
	TaskCount int    `json:"taskCount"` // derived, recomputed from the task collection
}

// DefaultCategories is the starter set used when no categories.json exists.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Personal", Color: "#ef4444", Icon: "User"},
		{ID: "2", Name: "Work", Color: "#3b82f6", Icon: "Briefcase"},
		{ID: "3", Name: "Projects", Color: "#8b5cf6", Icon: "FolderOpen"},
		{ID: "4", Name: "Shopping", Color: "#10b981", Icon: "ShoppingCart"},
	}
}
