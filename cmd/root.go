// Package cmd provides the CLI commands for the taskdeck application.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kherrera/taskdeck/internal/adapters/storage"
	"github.com/kherrera/taskdeck/internal/config"
	"github.com/kherrera/taskdeck/internal/domain"
	"github.com/kherrera/taskdeck/internal/services"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"

	// Global flags
	tasksPath  string
	jsonOutput bool

	// Global dependencies
	appConfig   *config.Config
	taskService *services.TaskService
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "Taskdeck - A personal task tracker for the terminal",
	Long: `Taskdeck is a command-line task tracker with priorities, due dates
and a searchable task list persisted to a plain JSON file.

Run "taskdeck" with no arguments to open the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	RunE: runMenu,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&tasksPath, "file", "", "Path to the task file (default: ~/.taskdeck/tasks.json)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Taskdeck\nVersion: {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(mcpCmd)
}

// initializeServices sets up the task store and services.
func initializeServices() error {
	// Load configuration
	var err error
	appConfig, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		appConfig = config.DefaultConfig()
	}

	// Determine task file path
	if tasksPath == "" {
		tasksPath = config.GetTasksPath(appConfig)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(tasksPath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// Initialize storage
	store, err := storage.Open(tasksPath)
	if err != nil {
		return fmt.Errorf("failed to open task file: %w", err)
	}

	taskService = services.NewTaskService(store)
	return nil
}

// parseTaskNumber converts a user-facing 1-based task number into a
// 0-based store index.
func parseTaskNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid task number: %q", arg)
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid task number: %d", n)
	}
	return n - 1, nil
}

// parseStatusFlag maps the user-supplied status spelling onto a status
// value. Accepts "pending", "in-progress"/"in progress" and "completed"
// in any case.
func parseStatusFlag(value string) (domain.Status, error) {
	switch strings.ToLower(strings.ReplaceAll(value, "-", " ")) {
	case "pending":
		return domain.StatusPending, nil
	case "in progress":
		return domain.StatusInProgress, nil
	case "completed", "done":
		return domain.StatusCompleted, nil
	default:
		return 0, fmt.Errorf("invalid status %q (expected pending, in-progress or completed)", value)
	}
}
