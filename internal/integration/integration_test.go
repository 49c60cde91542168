package integration

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kherrera/taskdeck/internal/adapters/archive"
	"github.com/kherrera/taskdeck/internal/adapters/storage"
	"github.com/kherrera/taskdeck/internal/domain"
	"github.com/kherrera/taskdeck/internal/services"
)

// setupTestService creates a task service over a temporary task file
func setupTestService(t *testing.T) (*services.TaskService, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tasks.json")
	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	return services.NewTaskService(store), path
}

// TestFullTaskLifecycle tests a complete add -> update -> complete -> delete flow
func TestFullTaskLifecycle(t *testing.T) {
	svc, path := setupTestService(t)
	ctx := context.Background()

	// 1. Add a task
	task, err := svc.AddTask(ctx, services.AddTaskRequest{
		Title:       "Ship release",
		Description: "tag and push",
		DueDate:     "2026-09-01",
		Priority:    "high",
	})
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}
	if task.Status != domain.StatusPending {
		t.Errorf("expected new task to be pending, got %v", task.Status)
	}

	// 2. Move it to in progress
	display := domain.StatusInProgress.Display()
	ok, err := svc.UpdateTask(ctx, 0, domain.TaskPatch{Status: &display})
	if err != nil {
		t.Fatalf("failed to update task: %v", err)
	}
	if !ok {
		t.Fatal("update reported task not found")
	}

	// 3. Complete it
	completed, ok, err := svc.CompleteTask(ctx, 0)
	if err != nil {
		t.Fatalf("failed to complete task: %v", err)
	}
	if !ok {
		t.Fatal("complete reported task not found")
	}
	if completed.Status != domain.StatusCompleted {
		t.Errorf("expected status completed, got %v", completed.Status)
	}
	if completed.CompletedAt == "" {
		t.Error("expected CompletedAt to be set")
	}

	// 4. Reload from disk and verify the completed state survived
	reloaded, err := storage.Open(path)
	if err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}
	got, ok := reloaded.Get(0)
	if !ok {
		t.Fatal("expected task after reload")
	}
	if got.Status != domain.StatusCompleted || got.CompletedAt != completed.CompletedAt {
		t.Errorf("reloaded task = %+v, want completed at %q", got, completed.CompletedAt)
	}

	// 5. Delete it
	ok, err = svc.DeleteTask(ctx, 0)
	if err != nil {
		t.Fatalf("failed to delete task: %v", err)
	}
	if !ok {
		t.Fatal("delete reported task not found")
	}
	if svc.Store().Len() != 0 {
		t.Errorf("expected empty store, got %d tasks", svc.Store().Len())
	}
}

// TestPersistedFileFormat verifies the on-disk JSON record shape end to end
func TestPersistedFileFormat(t *testing.T) {
	svc, path := setupTestService(t)
	ctx := context.Background()

	if _, err := svc.AddTask(ctx, services.AddTaskRequest{Title: "Buy milk"}); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read task file: %v", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		t.Fatalf("task file is not a JSON array: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec["title"] != "Buy milk" {
		t.Errorf("title = %v, want %q", rec["title"], "Buy milk")
	}
	if rec["priority"] != "MEDIUM" {
		t.Errorf("priority = %v, want symbolic name MEDIUM", rec["priority"])
	}
	if rec["status"] != "Pending" {
		t.Errorf("status = %v, want display string Pending", rec["status"])
	}
	if rec["due_date"] != nil {
		t.Errorf("due_date = %v, want null", rec["due_date"])
	}
	if rec["completed_at"] != nil {
		t.Errorf("completed_at = %v, want null", rec["completed_at"])
	}
}

// TestSearchAcrossReload verifies search over a store loaded from disk
func TestSearchAcrossReload(t *testing.T) {
	svc, path := setupTestService(t)
	ctx := context.Background()

	_, _ = svc.AddTask(ctx, services.AddTaskRequest{Title: "project-alpha-plan"})
	_, _ = svc.AddTask(ctx, services.AddTaskRequest{Title: "groceries", Description: "milk for alpha team"})
	_, _ = svc.AddTask(ctx, services.AddTaskRequest{Title: "unrelated"})

	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}
	reloaded := services.NewTaskService(store)

	got := reloaded.SearchTasks(ctx, services.SearchTasksRequest{Keyword: "ALPHA"})
	if len(got) != 2 {
		t.Fatalf("search returned %d tasks, want 2", len(got))
	}
	if got[0].Title != "project-alpha-plan" || got[1].Title != "groceries" {
		t.Errorf("search order = [%s, %s], want insertion order", got[0].Title, got[1].Title)
	}
}

// TestArchiveCompletedEndToEnd moves completed tasks into the sqlite archive
func TestArchiveCompletedEndToEnd(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	_, _ = svc.AddTask(ctx, services.AddTaskRequest{Title: "keep me"})
	_, _ = svc.AddTask(ctx, services.AddTaskRequest{Title: "done one"})
	_, _ = svc.AddTask(ctx, services.AddTaskRequest{Title: "done two"})
	_, _, _ = svc.CompleteTask(ctx, 1)
	_, _, _ = svc.CompleteTask(ctx, 2)

	arch, err := archive.Open(filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	defer arch.Close()

	moved, err := svc.ArchiveCompleted(ctx, arch)
	if err != nil {
		t.Fatalf("failed to archive: %v", err)
	}
	if moved != 2 {
		t.Errorf("archived %d tasks, want 2", moved)
	}

	// Live store keeps only the pending task
	if svc.Store().Len() != 1 {
		t.Fatalf("store has %d tasks, want 1", svc.Store().Len())
	}
	remaining, _ := svc.GetTask(0)
	if remaining.Title != "keep me" {
		t.Errorf("remaining task = %q, want %q", remaining.Title, "keep me")
	}

	// Archive holds both completed tasks
	archived, err := arch.List(ctx)
	if err != nil {
		t.Fatalf("failed to list archive: %v", err)
	}
	if len(archived) != 2 {
		t.Fatalf("archive has %d tasks, want 2", len(archived))
	}
	for _, a := range archived {
		if a.Task.Status != domain.StatusCompleted {
			t.Errorf("archived task %q has status %v, want completed", a.Task.Title, a.Task.Status)
		}
	}
}

// TestCorruptFileStartsFresh verifies a corrupt task file is treated as empty
func TestCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to seed corrupt file: %v", err)
	}

	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("corrupt file should not fail open: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("expected empty store, got %d tasks", store.Len())
	}

	// The next mutation overwrites the corrupt file with valid JSON
	svc := services.NewTaskService(store)
	if _, err := svc.AddTask(context.Background(), services.AddTaskRequest{Title: "fresh start"}); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	reloaded, err := storage.Open(path)
	if err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}
	if reloaded.Len() != 1 {
		t.Errorf("reloaded store has %d tasks, want 1", reloaded.Len())
	}
}
