package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [number]",
	Short: "Show a task in full",
	Long:  `Show every field of a task, addressed by its number from "taskdeck list".`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseTaskNumber(args[0])
		if err != nil {
			return err
		}

		task, ok := taskService.GetTask(index)
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

		fmt.Println(task.Render())
		return nil
	},
}
