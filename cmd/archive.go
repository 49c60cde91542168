package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kherrera/taskdeck/internal/adapters/archive"
	"github.com/kherrera/taskdeck/internal/config"
	"github.com/kherrera/taskdeck/internal/domain"
	"github.com/kherrera/taskdeck/internal/ports"
)

var archiveList bool

// archiveCmd represents the archive command
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Move completed tasks into the archive",
	Long: `Move every completed task out of the live task list into the
archive database. With --list, show what has been archived instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		arch, err := archiveOpen()
		if err != nil {
			return err
		}
		defer arch.Close()

		if archiveList {
			return listArchive(ctx, arch)
		}

		moved, err := taskService.ArchiveCompleted(ctx, arch)
		if err != nil {
			return fmt.Errorf("failed to archive tasks: %w", err)
		}

		if jsonOutput {
			fmt.Printf("{\"archived\": %d}\n", moved)
			return nil
		}

		if moved == 0 {
			fmt.Println("No completed tasks to archive.")
			return nil
		}
		fmt.Printf("🗄  Archived %d completed task(s).\n", moved)
		return nil
	},
}

func init() {
	archiveCmd.Flags().BoolVarP(&archiveList, "list", "l", false, "List archived tasks instead of archiving")
}

// archiveOpen opens the archive database next to the task file.
func archiveOpen() (ports.Archive, error) {
	arch, err := archive.Open(config.GetArchivePath(appConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	return arch, nil
}

func listArchive(ctx context.Context, arch ports.Archive) error {
	archived, err := arch.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list archive: %w", err)
	}

	if jsonOutput {
		type row struct {
			ID         string        `json:"id"`
			ArchivedAt string        `json:"archived_at"`
			Task       domain.Record `json:"task"`
		}
		rows := make([]row, len(archived))
		for i, a := range archived {
			rows[i] = row{ID: a.ID, ArchivedAt: a.ArchivedAt, Task: a.Task.ToRecord()}
		}
		jsonData, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal archive: %w", err)
		}
		fmt.Println(string(jsonData))
		return nil
	}

	if len(archived) == 0 {
		fmt.Println("Archive is empty.")
		return nil
	}

	fmt.Printf("🗄  Archived tasks (%d):\n\n", len(archived))
	for _, a := range archived {
		fmt.Printf("  %s  %s (completed %s)\n", a.ArchivedAt, a.Task.Title, a.Task.CompletedAt)
	}
	return nil
}
