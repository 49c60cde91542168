package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kherrera/taskdeck/internal/domain"
	"github.com/kherrera/taskdeck/internal/services"
)

var searchFuzzy bool

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search tasks by keyword",
	Long: `Search tasks by a case-insensitive keyword match on title and
description. With --fuzzy, titles are matched fuzzily instead, so
"wkrprt" finds "write weekly report".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		req := services.SearchTasksRequest{
			Keyword: strings.Join(args, " "),
			Fuzzy:   searchFuzzy,
		}
		tasks := taskService.SearchTasks(ctx, req)

		if jsonOutput {
			records := make([]domain.Record, len(tasks))
			for i, task := range tasks {
				records[i] = task.ToRecord()
			}
			data := map[string]interface{}{
				"tasks": records,
				"count": len(records),
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal tasks: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		if len(tasks) == 0 {
			fmt.Printf("No tasks matching %q.\n", req.Keyword)
			return nil
		}

		fmt.Printf("🔍 Matches (%d):\n\n", len(tasks))
		printTaskList(tasks)
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVarP(&searchFuzzy, "fuzzy", "f", false, "Fuzzy-match titles instead of substring search")
}
