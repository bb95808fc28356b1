package store

import (
	"path/filepath"
	"testing"

	"github.com/nakachan-ing/taskflow-cli/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeCounts(t *testing.T) {
	categories := model.DefaultCategories()
	tasks := []model.Task{
		{ID: "t1", CategoryID: "1"},
		{ID: "t2", CategoryID: "1", IsCompleted: true},
		{ID: "t3", CategoryID: "2"},
		{ID: "t4", CategoryID: "ghost"}, // dangling category counts nowhere
	}

	got := RecomputeCounts(tasks, categories)

	byID := make(map[string]int)
	for _, category := range got {
		byID[category.ID] = category.TaskCount
	}

	assert.Equal(t, 1, byID["1"]) // completed task excluded
	assert.Equal(t, 1, byID["2"])
	assert.Equal(t, 0, byID["3"])
	assert.Equal(t, 0, byID["4"])
}

func TestRecomputeCounts_FromScratchEachTime(t *testing.T) {
	categories := model.DefaultCategories()
	categories[0].TaskCount = 99 // stale value must not leak through

	got := RecomputeCounts(nil, categories)
	assert.Equal(t, 0, got[0].TaskCount)
}

func TestLoadCategories_DefaultsWhenFileAbsent(t *testing.T) {
	config := model.Config{DataDir: t.TempDir()}

	got, err := LoadCategories(config)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCategories(), got)
}

func TestLoadCategories_ReadsCustomFile(t *testing.T) {
	config := model.Config{DataDir: t.TempDir()}
	custom := []model.Category{{ID: "9", Name: "Garden", Color: "#22c55e", Icon: "Flower"}}
	require.NoError(t, SaveJson(custom, filepath.Join(config.DataDir, "categories.json")))

	got, err := LoadCategories(config)
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}
