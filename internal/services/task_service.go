// Package services implements the application layer (use cases)
// following hexagonal architecture principles.
package services

import (
	"context"
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/kherrera/taskdeck/internal/domain"
	"github.com/kherrera/taskdeck/internal/ports"
)

// TaskService handles task-related use cases on top of the task store.
type TaskService struct {
	store ports.TaskStore
}

// NewTaskService creates a new task service.
func NewTaskService(store ports.TaskStore) *TaskService {
	return &TaskService{store: store}
}

// Store exposes the underlying task store for presentation-layer helpers
// that need direct index access.
func (s *TaskService) Store() ports.TaskStore {
	return s.store
}

// AddTaskRequest contains the data needed to create a new task.
type AddTaskRequest struct {
	Title       string
	Description string
	DueDate     string // YYYY-MM-DD, optional
	Priority    string // LOW/MEDIUM/HIGH in any case, optional
}

// AddTask validates the request, creates the task and persists it.
func (s *TaskService) AddTask(ctx context.Context, req AddTaskRequest) (*domain.Task, error) {
	task, err := domain.NewTask(req.Title)
	if err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	if err := domain.ValidateDueDate(req.DueDate); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}
	task.Description = req.Description
	task.DueDate = req.DueDate

	if req.Priority != "" {
		priority, err := domain.ParsePriorityInput(req.Priority)
		if err != nil {
			return nil, fmt.Errorf("invalid task: %w", err)
		}
		task.Priority = priority
	}

	if err := s.store.Add(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}
	return task, nil
}

// ListTasksRequest contains filters for listing tasks.
type ListTasksRequest struct {
	Status *domain.Status
}

// ListTasks retrieves tasks based on filters, in insertion order.
func (s *TaskService) ListTasks(ctx context.Context, req ListTasksRequest) []*domain.Task {
	return s.store.List(req.Status)
}

// GetTask retrieves a single task by its 0-based index.
func (s *TaskService) GetTask(index int) (*domain.Task, bool) {
	return s.store.Get(index)
}

// UpdateTask applies a field patch to the task at index.
func (s *TaskService) UpdateTask(ctx context.Context, index int, patch domain.TaskPatch) (bool, error) {
	return s.store.Update(ctx, index, patch)
}

// CompleteTask marks the task at index as completed and persists. The
// second return is false when the index is out of range. Re-completing an
// already completed task overwrites its completion timestamp; callers that
// care should check IsCompleted first.
func (s *TaskService) CompleteTask(ctx context.Context, index int) (*domain.Task, bool, error) {
	task, ok := s.store.Get(index)
	if !ok {
		return nil, false, nil
	}

	task.MarkComplete()
	if err := s.store.Save(ctx); err != nil {
		return nil, false, fmt.Errorf("failed to save task: %w", err)
	}
	return task, true, nil
}

// DeleteTask removes the task at index.
func (s *TaskService) DeleteTask(ctx context.Context, index int) (bool, error) {
	return s.store.Delete(ctx, index)
}

// SearchTasksRequest describes a search.
type SearchTasksRequest struct {
	Keyword string
	Fuzzy   bool
}

// SearchTasks finds tasks matching the keyword. The default is a
// case-insensitive substring match on title and description; with Fuzzy
// set, titles are matched fuzzily instead.
func (s *TaskService) SearchTasks(ctx context.Context, req SearchTasksRequest) []*domain.Task {
	if !req.Fuzzy {
		return s.store.Search(req.Keyword)
	}

	tasks := s.store.List(nil)
	titles := make([]string, len(tasks))
	for i, task := range tasks {
		titles[i] = task.Title
	}

	matches := fuzzy.Find(req.Keyword, titles)
	result := make([]*domain.Task, 0, len(matches))
	for _, match := range matches {
		result = append(result, tasks[match.Index])
	}
	return result
}

// ArchiveCompleted moves every completed task from the store into the
// archive and returns how many were moved. Tasks are removed back to
// front so earlier indices stay valid.
func (s *TaskService) ArchiveCompleted(ctx context.Context, archive ports.Archive) (int, error) {
	var indices []int
	for i, task := range s.store.List(nil) {
		if task.IsCompleted() {
			indices = append(indices, i)
		}
	}

	for n := len(indices) - 1; n >= 0; n-- {
		index := indices[n]
		task, ok := s.store.Get(index)
		if !ok {
			continue
		}
		if _, err := archive.Store(ctx, task); err != nil {
			return 0, fmt.Errorf("failed to archive task: %w", err)
		}
		if _, err := s.store.Delete(ctx, index); err != nil {
			return 0, fmt.Errorf("failed to remove archived task: %w", err)
		}
	}
	return len(indices), nil
}
