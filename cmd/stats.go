/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"log"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nakachan-ing/taskflow-cli/internal/store"
	"github.com/nakachan-ing/taskflow-cli/internal/util"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
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

		now := time.Now()
		tasks := taskStore.Tasks()
		stats := util.ComputeStats(tasks, now)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false

		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("Total"),
			text.FgGreen.Sprintf("Completed"),
			text.FgGreen.Sprintf("Pending"),
			text.FgGreen.Sprintf("Overdue"),
			text.FgGreen.Sprintf("Due today"),
		})
		t.AppendRow(table.Row{
			stats.Total,
			text.FgHiGreen.Sprintf("%d", stats.Completed),
			text.FgHiYellow.Sprintf("%d", stats.Pending),
			text.FgHiRed.Sprintf("%d", stats.Overdue),
			text.FgHiBlue.Sprintf("%d", util.TodayCount(tasks, now)),
		})

		t.Render()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
