package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/kherrera/taskdeck/internal/domain"
	"github.com/kherrera/taskdeck/internal/services"
)

var listStatus string

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long:  `List all tasks, or filter by status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		req := services.ListTasksRequest{}
		if listStatus != "" {
			status, err := parseStatusFlag(listStatus)
			if err != nil {
				return err
			}
			req.Status = &status
		}

		tasks := taskService.ListTasks(ctx, req)

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
			fmt.Println("No tasks found.")
			return nil
		}

		fmt.Printf("📋 Tasks (%d):\n\n", len(tasks))
		printTaskList(tasks)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "Filter by status (pending, in-progress, completed)")
}

// printTaskList renders tasks as numbered rows with a colored status
// column, truncating titles to the terminal width.
func printTaskList(tasks []*domain.Task) {
	for _, line := range taskListLines(tasks) {
		fmt.Println(line)
	}
}

// taskListLines builds the list rows. Each row carries the task's store
// number, not its position in the (possibly filtered) slice, so the
// printed number is always valid input for show/complete/delete.
func taskListLines(tasks []*domain.Task) []string {
	width := getTerminalWidth()
	titleWidth := width - 36
	if titleWidth < 16 {
		titleWidth = 16
	}

	numbers := storeNumbers()
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		title := truncate(task.Title, titleWidth)
		line := fmt.Sprintf("%3d. %s %-*s [%s]", numbers[task], renderStatus(task.Status), titleWidth, title, task.Priority.Name())
		if task.DueDate != "" {
			line += fmt.Sprintf("  due %s", task.DueDate)
		}
		lines = append(lines, line)
	}
	return lines
}

// storeNumbers maps every stored task to its user-facing 1-based number.
// Task pointers are shared with the store, so filtered and searched
// slices resolve to the same numbers as the full list.
func storeNumbers() map[*domain.Task]int {
	all := taskService.ListTasks(context.Background(), services.ListTasksRequest{})
	numbers := make(map[*domain.Task]int, len(all))
	for i, task := range all {
		numbers[task] = i + 1
	}
	return numbers
}

// renderStatus returns the status display string colored per the theme.
func renderStatus(status domain.Status) string {
	theme := appConfig.Theme
	var color string
	switch status {
	case domain.StatusPending:
		color = theme.ColorPending
	case domain.StatusInProgress:
		color = theme.ColorInProgress
	case domain.StatusCompleted:
		color = theme.ColorCompleted
	}
	// Pad before styling so ANSI escapes do not break column alignment.
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(fmt.Sprintf("%-11s", status.Display()))
}

// getTerminalWidth returns the current terminal width, defaulting to 80.
func getTerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w < 40 {
		return 80
	}
	return w
}

// truncate shortens s to at most max runes, appending an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
