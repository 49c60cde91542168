package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kherrera/taskdeck/internal/domain"
)

var (
	updateTitle       string
	updateDescription string
	updateDueDate     string
	updatePriority    string
	updateStatus      string
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update [number]",
	Short: "Update fields of a task",
	Long: `Update one or more fields of a task. Only flags that are set are
applied; omitted fields keep their current value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		index, err := parseTaskNumber(args[0])
		if err != nil {
			return err
		}

		var patch domain.TaskPatch
		if cmd.Flags().Changed("title") {
			if updateTitle == "" {
				return fmt.Errorf("title cannot be empty")
			}
			patch.Title = &updateTitle
		}
		if cmd.Flags().Changed("desc") {
			patch.Description = &updateDescription
		}
		if cmd.Flags().Changed("due") {
			patch.DueDate = &updateDueDate
		}
		if cmd.Flags().Changed("priority") {
			patch.Priority = &updatePriority
		}
		if cmd.Flags().Changed("status") {
			status, err := parseStatusFlag(updateStatus)
			if err != nil {
				return err
			}
			display := status.Display()
			patch.Status = &display
		}

		if patch.IsEmpty() {
			return fmt.Errorf("nothing to update: set at least one of --title, --desc, --due, --priority, --status")
		}

		ok, err := taskService.UpdateTask(ctx, index, patch)
		if err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		if !ok {
			return fmt.Errorf("task not found: %s", args[0])
		}

		task, _ := taskService.GetTask(index)

		if jsonOutput {
			jsonData, err := json.MarshalIndent(task.ToRecord(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal task: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Printf("✅ Task #%s updated: %s\n", args[0], task.Title)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVarP(&updateDescription, "desc", "d", "", "New description")
	updateCmd.Flags().StringVar(&updateDueDate, "due", "", "New due date in YYYY-MM-DD format (empty clears it)")
	updateCmd.Flags().StringVarP(&updatePriority, "priority", "p", "", "New priority: low, medium or high")
	updateCmd.Flags().StringVarP(&updateStatus, "status", "s", "", "New status: pending, in-progress or completed")
}
