package cmd

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kherrera/taskdeck/internal/domain"
	"github.com/kherrera/taskdeck/internal/services"
)

var (
	exportFormat string
	exportStatus string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks",
	Long:  "Export the task list in markdown, CSV or JSON format.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd.Context())
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "md", "Output format: md, csv or json")
	exportCmd.Flags().StringVarP(&exportStatus, "status", "s", "", "Only export tasks with this status")
}

func runExport(ctx context.Context) error {
	req := services.ListTasksRequest{}
	if exportStatus != "" {
		status, err := parseStatusFlag(exportStatus)
		if err != nil {
			return err
		}
		req.Status = &status
	}
	tasks := taskService.ListTasks(ctx, req)

	switch exportFormat {
	case "csv":
		return exportTasksCSV(tasks)
	case "json":
		return exportTasksJSON(tasks)
	case "md":
		return exportTasksMarkdown(tasks)
	default:
		return fmt.Errorf("unknown export format %q (expected md, csv or json)", exportFormat)
	}
}

func exportTasksMarkdown(tasks []*domain.Task) error {
	fmt.Printf("# Taskdeck Export\n\n")
	fmt.Printf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04"))

	for i, t := range tasks {
		marker := " "
		if t.IsCompleted() {
			marker = "x"
		}
		fmt.Printf("- [%s] %d. %s (%s)\n", marker, i+1, t.Title, t.Priority.Name())
		if t.Description != "" {
			fmt.Printf("  - %s\n", t.Description)
		}
		if t.DueDate != "" {
			fmt.Printf("  - Due: %s\n", t.DueDate)
		}
		if t.CompletedAt != "" {
			fmt.Printf("  - Completed: %s\n", t.CompletedAt)
		}
	}
	return nil
}

func exportTasksCSV(tasks []*domain.Task) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	_ = w.Write([]string{
		"number", "title", "description", "due_date", "priority",
		"status", "created_at", "completed_at",
	})

	for i, t := range tasks {
		_ = w.Write([]string{
			fmt.Sprintf("%d", i+1),
			t.Title,
			t.Description,
			t.DueDate,
			t.Priority.Name(),
			t.Status.Display(),
			t.CreatedAt,
			t.CompletedAt,
		})
	}
	return nil
}

func exportTasksJSON(tasks []*domain.Task) error {
	records := make([]domain.Record, len(tasks))
	for i, t := range tasks {
		records[i] = t.ToRecord()
	}
	jsonData, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}
	fmt.Println(string(jsonData))
	return nil
}
