package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig_Storage(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Storage.DataDir != "~/.taskdeck" {
		t.Errorf("expected default data_dir '~/.taskdeck', got %q", cfg.Storage.DataDir)
	}
	if cfg.Storage.TasksFile != "tasks.json" {
		t.Errorf("expected default tasks_file 'tasks.json', got %q", cfg.Storage.TasksFile)
	}
	if cfg.Storage.ArchiveFile != "archive.db" {
		t.Errorf("expected default archive_file 'archive.db', got %q", cfg.Storage.ArchiveFile)
	}
}

func TestDefaultConfig_Theme(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Theme.ColorCompleted != "#2ECC71" {
		t.Errorf("expected green completed color, got %q", cfg.Theme.ColorCompleted)
	}
	if cfg.Theme.ColorPending == "" || cfg.Theme.ColorInProgress == "" {
		t.Error("status colors must have defaults")
	}
}

func TestGetTasksPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.DataDir = "/data"

	if got := GetTasksPath(cfg); got != filepath.Join("/data", "tasks.json") {
		t.Errorf("GetTasksPath() = %q", got)
	}
	if got := GetArchivePath(cfg); got != filepath.Join("/data", "archive.db") {
		t.Errorf("GetArchivePath() = %q", got)
	}
}
