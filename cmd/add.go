package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kherrera/taskdeck/internal/services"
)

var (
	addDescription string
	addDueDate     string
	addPriority    string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long:  `Add a new task to the task list.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		req := services.AddTaskRequest{
			Title:       strings.Join(args, " "),
			Description: addDescription,
			DueDate:     addDueDate,
			Priority:    addPriority,
		}

		task, err := taskService.AddTask(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}
		number := taskService.Store().Len()

		if jsonOutput {
			data := map[string]interface{}{
				"number": number,
				"task":   task.ToRecord(),
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal task: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Printf("✅ Task added: %s (#%d)\n", task.Title, number)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "desc", "d", "", "Description for the task")
	addCmd.Flags().StringVar(&addDueDate, "due", "", "Due date in YYYY-MM-DD format")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority: low, medium or high")
}
