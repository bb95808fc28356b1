/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nakachan-ing/taskflow-cli/internal/model"
	"github.com/nakachan-ing/taskflow-cli/internal/store"
	"github.com/nakachan-ing/taskflow-cli/internal/util"
	"github.com/spf13/cobra"
)

var taskDescription string
var taskDueDate string
var taskPriority string
var taskCategory string
var taskParent string
var taskUseEditor bool
var taskFilter string
var listCategory string
var taskSearchQuery string
var taskPageSize int
var taskMeta bool

var editTitle string
var editDescription string
var editDueDate string
var editPriority string
var editCategory string

func validPriority(p string) bool {
	switch model.Priority(p) {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
		return true
	}
	return false
}

func categoryName(categories []model.Category, id string) string {
	for _, category := range categories {
		if category.ID == id {
			return category.Name
		}
	}
	// Dangling categoryId is "no category", not an error
	return "-"
}

func coloredPriority(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return text.FgHiRed.Sprintf("%s", p)
	case model.PriorityMedium:
		return text.FgHiYellow.Sprintf("%s", p)
	case model.PriorityLow:
		return text.FgHiBlue.Sprintf("%s", p)
	default:
		return string(p)
	}
}

func coloredDueLabel(dueDate string, now time.Time) string {
	label := util.DueLabel(dueDate, now)
	switch label {
	case "Today":
		return text.FgHiBlue.Sprintf("%s", label)
	case "Tomorrow":
		return text.FgHiCyan.Sprintf("%s", label)
	case "Overdue":
		return text.FgHiRed.Sprintf("%s", label)
	default:
		return label
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// taskCmd represents the task command
var taskCmd = &cobra.Command{
	Use:     "task",
	Short:   "Create, list, and manage tasks",
	Args:    cobra.MaximumNArgs(1),
	Aliases: []string{"t"},
}

var newTaskCmd = &cobra.Command{
	Use:     "new [title]",
	Short:   "Add a new task",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"n"},
	Run: func(cmd *cobra.Command, args []string) {
		taskTitle := args[0]

		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		if taskDueDate != "" {
			if _, ok := util.ParseDueDate(taskDueDate); !ok {
				log.Printf("❌ Invalid due date %q (expected YYYY-MM-DD)", taskDueDate)
				os.Exit(1)
			}
		}
		if !validPriority(taskPriority) {
			log.Printf("❌ Invalid priority %q (expected low, medium, or high)", taskPriority)
			os.Exit(1)
		}

		taskStore, err := store.NewTaskStore(*config)
		if err != nil {
			log.Printf("⚠️ %v", err)
		}

		description := taskDescription
		if taskUseEditor {
			description, err = util.ComposeInEditor(description, *config)
			if err != nil {
				log.Printf("❌ Failed to open editor: %v\n", err)
				os.Exit(1)
			}
		}

		parentID := ""
		if taskParent != "" {
			parentID, err = taskStore.ResolveID(taskParent)
			if err != nil {
				log.Printf("❌ Parent task %q not found: %v", taskParent, err)
				os.Exit(1)
			}
		}

		task, err := taskStore.Create(model.TaskDraft{
			Title:       taskTitle,
			Description: description,
			DueDate:     taskDueDate,
			Priority:    model.Priority(taskPriority),
			CategoryID:  taskCategory,
			ParentID:    parentID,
		})
		if errors.Is(err, store.ErrEmptyTitle) {
			fmt.Println("❌ Please enter a task title")
			return
		}
		if err != nil {
			// Task is live in memory, only the write failed
			log.Printf("⚠️ %v", err)
		}

		fmt.Printf("✅ Task %q has been created successfully. (id: %s)\n", task.Title, shortID(task.ID))
	},
}

var listTaskCmd = &cobra.Command{
	Use:     "list",
	Short:   "List tasks for the active view",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {

		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		taskStore, err := store.NewTaskStore(*config)
		if err != nil {
			log.Printf("⚠️ %v", err)
		}

		selector := model.ViewSelector{
			ActiveCategory: taskFilter,
			SearchTerm:     taskSearchQuery,
		}
		if listCategory != "" {
			selector.ActiveCategory = listCategory
		}

		now := time.Now()
		projection := util.SortTasks(util.FilterTasks(taskStore.Tasks(), selector, now))
		categories := taskStore.Categories()

		reader := bufio.NewReader(os.Stdin)
		page := 0

		fmt.Println(strings.Repeat("=", 30))
		fmt.Printf("Tasks: %v tasks shown\n", len(projection))
		fmt.Println(strings.Repeat("=", 30))

		// `--limit` of -1 means show everything on one page
		if taskPageSize == -1 {
			taskPageSize = len(projection)
		}

		for {
			start := page * taskPageSize
			end := start + taskPageSize

			if start >= len(projection) {
				fmt.Println("No more tasks to display.")
				break
			}
			if end > len(projection) {
				end = len(projection)
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleDouble)
			t.Style().Options.SeparateRows = false

			t.AppendHeader(table.Row{
				text.FgGreen.Sprintf("ID"), text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Title")),
				text.FgGreen.Sprintf("Category"),
				text.FgGreen.Sprintf("Priority"),
				text.FgGreen.Sprintf("Due"),
				text.FgGreen.Sprintf("Status"),
			})

			for _, task := range projection[start:end] {
				status := text.FgHiYellow.Sprintf("Pending")
				if task.IsCompleted {
					status = text.FgHiGreen.Sprintf("Done")
				}

				t.AppendRow(table.Row{
					shortID(task.ID),
					task.Title,
					categoryName(categories, task.CategoryID),
					coloredPriority(task.Priority),
					coloredDueLabel(task.DueDate, now),
					status,
				})
			}

			t.Render()

			if end >= len(projection) {
				break
			}

			fmt.Print("\nPress Enter for the next page (q to quit): ")
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(input)

			if input == "q" {
				break
			}

			page++
		}

	},
}

var showTaskCmd = &cobra.Command{
	Use:     "show [id]",
	Short:   "Show task detail",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"s"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		taskStore, err := store.NewTaskStore(*config)
		if err != nil {
			log.Printf("⚠️ %v", err)
		}

		taskID, err := taskStore.ResolveID(args[0])
		if err != nil {
			log.Printf("❌ Task with ID %s not found", args[0])
			os.Exit(1)
		}
		task, _ := taskStore.Get(taskID)

		titleStyle := color.New(color.FgCyan, color.Bold).SprintFunc()
		metaStyle := color.New(color.FgHiGreen).SprintFunc()
		now := time.Now()

		fmt.Printf("[%v] %v\n", titleStyle(shortID(task.ID)), titleStyle(task.Title))
		fmt.Println(strings.Repeat("-", 50))
		fmt.Printf("Category: %v\n", metaStyle(categoryName(taskStore.Categories(), task.CategoryID)))
		fmt.Printf("Priority: %v\n", metaStyle(task.Priority))
		if task.DueDate != "" {
			fmt.Printf("Due: %v (%v)\n", metaStyle(task.DueDate), util.DueLabel(task.DueDate, now))
		}
		status := "Pending"
		if task.IsCompleted {
			status = "Done"
		}
		fmt.Printf("Status: %v\n", metaStyle(status))
		fmt.Printf("Created at: %v\n", metaStyle(task.CreatedAt))
		fmt.Printf("Updated at: %v\n", metaStyle(task.UpdatedAt))

		subtasks := util.Subtasks(taskStore.Tasks(), task.ID)
		if len(subtasks) > 0 {
			fmt.Printf("Subtasks (%d):\n", len(subtasks))
			for _, subtask := range subtasks {
				mark := " "
				if subtask.IsCompleted {
					mark = "x"
				}
				fmt.Printf("  [%s] %s (%s)\n", mark, subtask.Title, shortID(subtask.ID))
			}
		}

		// Render the description as markdown unless --meta is used
		if !taskMeta && task.Description != "" {
			renderedContent, err := glamour.Render(task.Description, "dark")
			if err != nil {
				log.Printf("⚠️ Failed to render description: %v", err)
			} else {
				fmt.Println(renderedContent)
			}
		}
	},
}

var editTaskCmd = &cobra.Command{
	Use:     "edit [id]",
	Short:   "Edit a task",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"e"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		taskStore, err := store.NewTaskStore(*config)
		if err != nil {
			log.Printf("⚠️ %v", err)
		}

		taskID, err := taskStore.ResolveID(args[0])
		if err != nil {
			log.Printf("❌ Task with ID %s not found", args[0])
			os.Exit(1)
		}

		var patch model.TaskPatch
		if cmd.Flags().Changed("title") {
			patch.Title = &editTitle
		}
		if cmd.Flags().Changed("desc") {
			patch.Description = &editDescription
		}
		if cmd.Flags().Changed("due") {
			if editDueDate != "" {
				if _, ok := util.ParseDueDate(editDueDate); !ok {
					log.Printf("❌ Invalid due date %q (expected YYYY-MM-DD)", editDueDate)
					os.Exit(1)
				}
			}
			patch.DueDate = &editDueDate
		}
		if cmd.Flags().Changed("priority") {
			if !validPriority(editPriority) {
				log.Printf("❌ Invalid priority %q (expected low, medium, or high)", editPriority)
				os.Exit(1)
			}
			priority := model.Priority(editPriority)
			patch.Priority = &priority
		}
		if cmd.Flags().Changed("category") {
			patch.CategoryID = &editCategory
		}

		if taskUseEditor {
			current, _ := taskStore.Get(taskID)
			edited, err := util.ComposeInEditor(current.Description, *config)
			if err != nil {
				log.Printf("❌ Failed to open editor: %v\n", err)
				os.Exit(1)
			}
			patch.Description = &edited
		}

		if patch == (model.TaskPatch{}) {
			fmt.Println("Nothing to update.")
			return
		}

		task, err := taskStore.Update(taskID, patch)
		if errors.Is(err, store.ErrEmptyTitle) {
			fmt.Println("❌ Please enter a task title")
			return
		}
		if err != nil {
			log.Printf("⚠️ %v", err)
		}

		fmt.Printf("✅ Task %s updated successfully!\n", shortID(task.ID))
	},
}

var doneTaskCmd = &cobra.Command{
	Use:     "done [id]",
	Short:   "Toggle task completion",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"d"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		taskStore, err := store.NewTaskStore(*config)
		if err != nil {
			log.Printf("⚠️ %v", err)
		}

		taskID, err := taskStore.ResolveID(args[0])
		if err != nil {
			// A missing id is not fatal here, nothing happened
			fmt.Printf("Task %s not found, nothing to do.\n", args[0])
			return
		}

		task, err := taskStore.ToggleComplete(taskID)
		if err != nil && !errors.Is(err, store.ErrTaskNotFound) {
			log.Printf("⚠️ %v", err)
		}

		if task.IsCompleted {
			fmt.Println("✅ Task completed! 🎉")
		} else {
			fmt.Println("Task marked as incomplete")
		}
	},
}

var removeTaskCmd = &cobra.Command{
	Use:     "remove [id]",
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		taskStore, err := store.NewTaskStore(*config)
		if err != nil {
			log.Printf("⚠️ %v", err)
		}

		taskID, err := taskStore.ResolveID(args[0])
		if err != nil {
			// Deleting a missing task is a no-op
			fmt.Printf("Task %s not found, nothing to remove.\n", args[0])
			return
		}

		if err := taskStore.Delete(taskID); err != nil {
			log.Printf("⚠️ %v", err)
		}

		fmt.Println("✅ Task deleted successfully!")
	},
}

var reorderTaskCmd = &cobra.Command{
	Use:   "reorder [id...]",
	Short: "Reorder the current view by hand",
	Long: `Reorder assigns an explicit position to each listed task, in the
order given. Tasks not listed keep their previous position.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		taskStore, err := store.NewTaskStore(*config)
		if err != nil {
			log.Printf("⚠️ %v", err)
		}

		orderedIDs := make([]string, 0, len(args))
		for _, arg := range args {
			taskID, err := taskStore.ResolveID(arg)
			if err != nil {
				log.Printf("❌ Task with ID %s not found", arg)
				os.Exit(1)
			}
			orderedIDs = append(orderedIDs, taskID)
		}

		if err := taskStore.Reorder(orderedIDs); err != nil {
			log.Printf("⚠️ %v", err)
		}

		fmt.Println("✅ Tasks reordered successfully!")
	},
}

func init() {
	taskCmd.AddCommand(newTaskCmd)
	taskCmd.AddCommand(listTaskCmd)
	taskCmd.AddCommand(showTaskCmd)
	taskCmd.AddCommand(editTaskCmd)
	taskCmd.AddCommand(doneTaskCmd)
	taskCmd.AddCommand(removeTaskCmd)
	taskCmd.AddCommand(reorderTaskCmd)
	rootCmd.AddCommand(taskCmd)
	newTaskCmd.Flags().StringVarP(&taskDescription, "desc", "d", "", "Task description")
	newTaskCmd.Flags().StringVar(&taskDueDate, "due", "", "Due date (YYYY-MM-DD)")
	newTaskCmd.Flags().StringVarP(&taskPriority, "priority", "p", "medium", "Priority (low, medium, high)")
	newTaskCmd.Flags().StringVarP(&taskCategory, "category", "c", "1", "Category id")
	newTaskCmd.Flags().StringVar(&taskParent, "parent", "", "Parent task id (makes this a subtask)")
	newTaskCmd.Flags().BoolVarP(&taskUseEditor, "editor", "e", false, "Compose the description in $EDITOR")
	listTaskCmd.Flags().StringVarP(&taskFilter, "filter", "f", "all", "Filter: all, today, completed, overdue, or a category id")
	listTaskCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category id")
	listTaskCmd.Flags().StringVarP(&taskSearchQuery, "search", "q", "", "Search by title or description")
	listTaskCmd.Flags().IntVar(&taskPageSize, "limit", 20, "Set the number of tasks to display per page (-1 for all)")
	showTaskCmd.Flags().BoolVar(&taskMeta, "meta", false, "Show only metadata without the description")
	editTaskCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editTaskCmd.Flags().StringVar(&editDescription, "desc", "", "New description")
	editTaskCmd.Flags().StringVar(&editDueDate, "due", "", "New due date (YYYY-MM-DD, empty to clear)")
	editTaskCmd.Flags().StringVar(&editPriority, "priority", "", "New priority (low, medium, high)")
	editTaskCmd.Flags().StringVar(&editCategory, "category", "", "New category id")
	editTaskCmd.Flags().BoolVarP(&taskUseEditor, "editor", "e", false, "Edit the description in $EDITOR")
}
