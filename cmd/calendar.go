/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nakachan-ing/taskflow-cli/internal/model"
	"github.com/nakachan-ing/taskflow-cli/internal/store"
	"github.com/nakachan-ing/taskflow-cli/internal/util"
	"github.com/spf13/cobra"
)

func tasksForDay(tasks []model.Task, day time.Time) []model.Task {
	var out []model.Task
	for _, task := range tasks {
		if due, ok := util.ParseDueDate(task.DueDate); ok && util.SameDay(due, day) {
			out = append(out, task)
		}
	}
	return out
}

func calendarCell(tasks []model.Task, day time.Time, now time.Time) string {
	var cell strings.Builder

	if util.SameDay(day, now) {
		cell.WriteString(text.FgHiBlue.Sprintf("[%d]", day.Day()))
	} else {
		cell.WriteString(fmt.Sprintf("%d", day.Day()))
	}

	dayTasks := tasksForDay(tasks, day)
	shown := dayTasks
	if len(shown) > 3 {
		shown = shown[:3]
	}
	for _, task := range shown {
		title := task.Title
		if len(title) > 12 {
			title = title[:12] + "…"
		}
		if task.IsCompleted {
			cell.WriteString("\n· " + title)
		} else {
			cell.WriteString("\n• " + title)
		}
	}
	if len(dayTasks) > 3 {
		cell.WriteString(fmt.Sprintf("\n+%d more", len(dayTasks)-3))
	}

	return cell.String()
}

// calendarCmd represents the calendar command
var calendarCmd = &cobra.Command{
	Use:     "calendar [YYYY-MM]",
	Short:   "Show a month of due tasks",
	Args:    cobra.MaximumNArgs(1),
	Aliases: []string{"cal"},
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
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		if len(args) == 1 {
			parsed, err := time.Parse("2006-01", args[0])
			if err != nil {
				log.Printf("❌ Invalid month %q (expected YYYY-MM)", args[0])
				os.Exit(1)
			}
			month = parsed
		}

		tasks := taskStore.Tasks()
		nextMonth := month.AddDate(0, 1, 0)

		fmt.Println(month.Format("January 2006"))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)

		t.AppendHeader(table.Row{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"})

		// Walk the grid from the Sunday on or before the 1st
		week := month.AddDate(0, 0, -int(month.Weekday()))
		for week.Before(nextMonth) {
			row := make(table.Row, 7)
			for i := 0; i < 7; i++ {
				day := week.AddDate(0, 0, i)
				if day.Month() != month.Month() {
					row[i] = ""
					continue
				}
				row[i] = calendarCell(tasks, day, now)
			}
			t.AppendRow(row)
			week = week.AddDate(0, 0, 7)
		}

		t.Render()
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}
