package ports

import (
	"context"
	"testing"

	"github.com/kherrera/taskdeck/internal/domain"
)

// Mock implementation for testing the TaskStore contract.

type mockTaskStore struct {
	tasks []*domain.Task
	saves int
}

func (m *mockTaskStore) Add(ctx context.Context, task *domain.Task) error {
	m.tasks = append(m.tasks, task)
	m.saves++
	return nil
}

func (m *mockTaskStore) Get(index int) (*domain.Task, bool) {
	if index < 0 || index >= len(m.tasks) {
		return nil, false
	}
	return m.tasks[index], true
}

func (m *mockTaskStore) Delete(ctx context.Context, index int) (bool, error) {
	if index < 0 || index >= len(m.tasks) {
		return false, nil
	}
	m.tasks = append(m.tasks[:index], m.tasks[index+1:]...)
	m.saves++
	return true, nil
}

func (m *mockTaskStore) Update(ctx context.Context, index int, patch domain.TaskPatch) (bool, error) {
	if index < 0 || index >= len(m.tasks) {
		return false, nil
	}
	if err := patch.Apply(m.tasks[index]); err != nil {
		return false, err
	}
	m.saves++
	return true, nil
}

func (m *mockTaskStore) List(filterStatus *domain.Status) []*domain.Task {
	result := make([]*domain.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		if filterStatus == nil || task.Status == *filterStatus {
			result = append(result, task)
		}
	}
	return result
}

func (m *mockTaskStore) Search(keyword string) []*domain.Task {
	return nil
}

func (m *mockTaskStore) Len() int { return len(m.tasks) }

func (m *mockTaskStore) Save(ctx context.Context) error {
	m.saves++
	return nil
}

func (m *mockTaskStore) Path() string { return "mock" }

var _ TaskStore = (*mockTaskStore)(nil)

func TestMockTaskStore(t *testing.T) {
	store := &mockTaskStore{}
	ctx := context.Background()

	t.Run("add and get task", func(t *testing.T) {
		task, _ := domain.NewTask("Test task")
		if err := store.Add(ctx, task); err != nil {
			t.Errorf("Add() error = %v", err)
		}

		found, ok := store.Get(0)
		if !ok {
			t.Fatal("Get(0) not found after Add")
		}
		if found.Title != task.Title {
			t.Errorf("Get(0) title = %v, want %v", found.Title, task.Title)
		}
	})

	t.Run("get out of range", func(t *testing.T) {
		if _, ok := store.Get(5); ok {
			t.Error("Get(5) = ok for out-of-range index")
		}
	})

	t.Run("delete out of range reports false", func(t *testing.T) {
		ok, err := store.Delete(ctx, 5)
		if err != nil {
			t.Errorf("Delete() error = %v", err)
		}
		if ok {
			t.Error("Delete(5) = true for out-of-range index")
		}
		if store.Len() != 1 {
			t.Errorf("Len() = %d after failed delete, want 1", store.Len())
		}
	})
}
