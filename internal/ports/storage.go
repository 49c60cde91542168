// Package ports defines the interfaces (driven and driving ports)
// for the taskdeck application following hexagonal architecture principles.
// These interfaces define the contracts between the domain layer and
// external infrastructure.
package ports

import (
	"context"

	"github.com/kherrera/taskdeck/internal/domain"
)

// TaskStore owns the in-memory task collection and its persisted file.
// Tasks are addressed by 0-based insertion index; deletion shifts later
// indices down. Every mutating operation persists the whole collection
// before returning. This is a driven port (implemented by adapters).
type TaskStore interface {
	// Add appends a task to the collection and persists.
	Add(ctx context.Context, task *domain.Task) error

	// Get returns the task at index, or false when out of range. The
	// returned pointer is shared with the store: mutating it (for example
	// via MarkComplete) changes the stored task.
	Get(index int) (*domain.Task, bool)

	// Delete removes the task at index and persists. It reports false for
	// an out-of-range index without touching state or the file.
	Delete(ctx context.Context, index int) (bool, error)

	// Update applies a field patch to the task at index and persists.
	// False for an out-of-range index; a bad enum value in the patch is an
	// error and leaves both the task and the file unchanged.
	Update(ctx context.Context, index int, patch domain.TaskPatch) (bool, error)

	// List returns a new slice of shared task pointers, either the whole
	// collection in insertion order or only the tasks with the given status.
	List(filterStatus *domain.Status) []*domain.Task

	// Search returns tasks whose title or description contains the keyword,
	// case-insensitively, in insertion order.
	Search(keyword string) []*domain.Task

	// Len returns the number of tasks in the collection.
	Len() int

	// Save persists the whole collection, overwriting the file.
	Save(ctx context.Context) error

	// Path returns the location of the persisted file.
	Path() string
}

// Archive stores completed tasks that were moved out of the live
// collection. This is a driven port (implemented by adapters).
type Archive interface {
	// Store archives a task and returns the identifier assigned to it.
	Store(ctx context.Context, task *domain.Task) (string, error)

	// List returns all archived tasks, most recently archived first.
	List(ctx context.Context) ([]*ArchivedTask, error)

	// Close closes the archive.
	Close() error

	// Migrate creates the archive schema.
	Migrate() error
}

// ArchivedTask is a task row in the archive together with its archive
// metadata.
type ArchivedTask struct {
	ID         string
	Task       domain.Task
	ArchivedAt string
}
