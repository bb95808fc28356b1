package store

import (
	"fmt"
	"path/filepath"

	"github.com/nakachan-ing/taskflow-cli/internal/model"
)

func CategoriesJsonPath(config model.Config) string {
	return filepath.Join(config.DataDir, "categories.json")
}

// LoadCategories reads categories.json from the data directory, falling
// back to the starter set when the file is absent.
func LoadCategories(config model.Config) ([]model.Category, error) {
	var categories []model.Category
	err := LoadJson(CategoriesJsonPath(config), &categories)
	if err != nil {
		return nil, fmt.Errorf("❌ Error loading categories from JSON: %w", err)
	}
	if len(categories) == 0 {
		categories = model.DefaultCategories()
	}
	return categories, nil
}

// RecomputeCounts rebuilds every category's open-task count from scratch.
// Counts are always derived from the full collection, never patched
// incrementally, so a missed update path cannot make them drift.
func RecomputeCounts(tasks []model.Task, categories []model.Category) []model.Category {
	out := make([]model.Category, len(categories))
	for i, category := range categories {
		count := 0
		for _, task := range tasks {
			if task.CategoryID == category.ID && !task.IsCompleted {
				count++
			}
		}
		category.TaskCount = count
		out[i] = category
	}
	return out
}
