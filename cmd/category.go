/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nakachan-ing/taskflow-cli/internal/store"
	"github.com/spf13/cobra"
)

// categoryCmd represents the category command
var categoryCmd = &cobra.Command{
	Use:     "category",
	Short:   "Manage task categories",
	Aliases: []string{"c"},
}

var listCategoryCmd = &cobra.Command{
	Use:     "list",
	Short:   "List categories with open task counts",
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

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false

		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("ID"),
			text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Name")),
			text.FgGreen.Sprintf("Icon"),
			text.FgGreen.Sprintf("Color"),
			text.FgGreen.Sprintf("Open tasks"),
		})

		for _, category := range taskStore.Categories() {
			t.AppendRow(table.Row{
				category.ID,
				category.Name,
				category.Icon,
				category.Color,
				category.TaskCount,
			})
		}

		t.Render()
	},
}

func init() {
	categoryCmd.AddCommand(listCategoryCmd)
	rootCmd.AddCommand(categoryCmd)
}
