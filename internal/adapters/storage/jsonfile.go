// Package storage provides the JSON-file implementation of the task store
// port. The whole collection lives in memory and is rewritten to disk as a
// pretty-printed JSON array after every mutation.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/kherrera/taskdeck/internal/domain"
	"github.com/kherrera/taskdeck/internal/ports"
)

// fileStore implements the ports.TaskStore interface on a single JSON file.
type fileStore struct {
	path  string
	tasks []*domain.Task
}

// Ensure fileStore implements ports.TaskStore.
var _ ports.TaskStore = (*fileStore)(nil)

// Open loads the task file at path, creating an empty collection when the
// file does not exist. Malformed JSON resets the collection to empty: a
// deliberate start-fresh policy, which means a corrupt file is overwritten
// on the next mutation. A record that decodes as JSON but carries an
// unknown priority or status aborts the load instead, so a file written by
// a newer version is not silently destroyed. I/O errors propagate.
func Open(path string) (ports.TaskStore, error) {
	s := &fileStore{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}

	var records []domain.Record
	if err := json.Unmarshal(data, &records); err != nil {
		// Start-fresh policy for corrupt content.
		s.tasks = nil
		return s, nil
	}

	tasks := make([]*domain.Task, 0, len(records))
	for i, rec := range records {
		task, err := domain.FromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("failed to decode task %d: %w", i, err)
		}
		tasks = append(tasks, task)
	}
	s.tasks = tasks
	return s, nil
}

// Add appends a task to the collection and persists.
func (s *fileStore) Add(ctx context.Context, task *domain.Task) error {
	s.tasks = append(s.tasks, task)
	return s.Save(ctx)
}

// Get returns the task at index. The pointer is shared with the store.
func (s *fileStore) Get(index int) (*domain.Task, bool) {
	if index < 0 || index >= len(s.tasks) {
		return nil, false
	}
	return s.tasks[index], true
}

// Delete removes the task at index and persists. Out-of-range indices
// report false without an error and leave the collection untouched.
func (s *fileStore) Delete(ctx context.Context, index int) (bool, error) {
	if index < 0 || index >= len(s.tasks) {
		return false, nil
	}
	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	if err := s.Save(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Update applies the patch to the task at index and persists. The patch
// resolves enum values before touching the task, so a bad value fails the
// call with the collection and the file unchanged.
func (s *fileStore) Update(ctx context.Context, index int, patch domain.TaskPatch) (bool, error) {
	if index < 0 || index >= len(s.tasks) {
		return false, nil
	}
	if err := patch.Apply(s.tasks[index]); err != nil {
		return false, err
	}
	if err := s.Save(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// List returns a new slice of shared task pointers in insertion order,
// optionally narrowed to one status.
func (s *fileStore) List(filterStatus *domain.Status) []*domain.Task {
	result := make([]*domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if filterStatus == nil || task.Status == *filterStatus {
			result = append(result, task)
		}
	}
	return result
}

// Search returns tasks whose title or description contains the keyword,
// case-insensitively, in insertion order.
func (s *fileStore) Search(keyword string) []*domain.Task {
	keyword = strings.ToLower(keyword)
	result := make([]*domain.Task, 0)
	for _, task := range s.tasks {
		if strings.Contains(strings.ToLower(task.Title), keyword) ||
			strings.Contains(strings.ToLower(task.Description), keyword) {
			result = append(result, task)
		}
	}
	return result
}

// Len returns the number of tasks in the collection.
func (s *fileStore) Len() int {
	return len(s.tasks)
}

// Save serializes the whole collection and overwrites the file.
func (s *fileStore) Save(ctx context.Context) error {
	records := make([]domain.Record, len(s.tasks))
	for i, task := range s.tasks {
		records[i] = task.ToRecord()
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write task file: %w", err)
	}
	return nil
}

// Path returns the location of the persisted file.
func (s *fileStore) Path() string {
	return s.path
}
