package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// completeCmd represents the complete command
var completeCmd = &cobra.Command{
	Use:   "complete [number]",
	Short: "Mark a task as completed",
	Long:  `Mark a task as completed and stamp its completion time.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		index, err := parseTaskNumber(args[0])
		if err != nil {
			return err
		}

		existing, ok := taskService.GetTask(index)
		if !ok {
			return fmt.Errorf("task not found: %s", args[0])
		}
		if existing.IsCompleted() {
			fmt.Printf("Task #%s is already completed.\n", args[0])
			return nil
		}

		task, ok, err := taskService.CompleteTask(ctx, index)
		if err != nil {
			return fmt.Errorf("failed to complete task: %w", err)
		}
		if !ok {
			return fmt.Errorf("task not found: %s", args[0])
		}

		if jsonOutput {
			jsonData, err := json.MarshalIndent(task.ToRecord(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal task: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Printf("✅ Task completed: %s (at %s)\n", task.Title, task.CompletedAt)
		return nil
	},
}
