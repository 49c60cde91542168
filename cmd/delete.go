package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteYes bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete [number]",
	Short: "Delete a task",
	Long:  `Delete a task by its number. Use with caution - this cannot be undone.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		index, err := parseTaskNumber(args[0])
		if err != nil {
			return err
		}

		// Get task info first for confirmation
		task, ok := taskService.GetTask(index)
		if !ok {
			return fmt.Errorf("task not found: %s", args[0])
		}

		// Confirm deletion
		if !deleteYes && !jsonOutput {
			fmt.Printf("Are you sure you want to delete task '%s' (#%s)? [y/N]: ", task.Title, args[0])
			var confirm string
			fmt.Scanln(&confirm)
			if confirm != "y" && confirm != "Y" {
				fmt.Println("Deletion cancelled.")
				return nil
			}
		}

		ok, err = taskService.DeleteTask(ctx, index)
		if err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		if !ok {
			return fmt.Errorf("task not found: %s", args[0])
		}

		if jsonOutput {
			fmt.Printf("{\"deleted\": true, \"number\": %s}\n", args[0])
		} else {
			fmt.Printf("✅ Task '%s' deleted.\n", task.Title)
		}

		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
