// Package domain defines the task entity, its priority and status
// enumerations, the persisted record codec and the field patch used for
// partial updates. It imports nothing from the rest of the application.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Common domain errors.
var (
	ErrEmptyTaskTitle  = errors.New("task title cannot be empty")
	ErrInvalidDueDate  = errors.New("due date must be a valid YYYY-MM-DD date")
	ErrUnknownPriority = errors.New("unknown priority")
	ErrUnknownStatus   = errors.New("unknown status")
	ErrMissingField    = errors.New("missing required field")
)

// Timestamp layouts used in the persisted file. CreatedAt and CompletedAt
// are carried as formatted strings so that records round-trip verbatim.
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DueDateLayout   = "2006-01-02"
)

// Priority represents how urgent a task is.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

// priorityNames maps each priority to its symbolic name, which is also
// how priorities are serialized in the task file.
var priorityNames = map[Priority]string{
	PriorityLow:    "LOW",
	PriorityMedium: "MEDIUM",
	PriorityHigh:   "HIGH",
}

var prioritiesByName = map[string]Priority{
	"LOW":    PriorityLow,
	"MEDIUM": PriorityMedium,
	"HIGH":   PriorityHigh,
}

// Name returns the symbolic name of the priority ("LOW", "MEDIUM", "HIGH").
func (p Priority) Name() string {
	return priorityNames[p]
}

// ParsePriorityName resolves a symbolic priority name. The match is
// case-sensitive; records always carry upper-case names.
func ParsePriorityName(name string) (Priority, error) {
	p, ok := prioritiesByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPriority, name)
	}
	return p, nil
}

// ParsePriorityInput resolves user-supplied priority text, upper-casing it
// before the lookup so "high" and "HIGH" both work.
func ParsePriorityInput(input string) (Priority, error) {
	return ParsePriorityName(strings.ToUpper(input))
}

// Priorities returns all priorities in ascending order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// Status represents the current state of a task.
type Status int

const (
	StatusPending Status = iota + 1
	StatusInProgress
	StatusCompleted
)

// statusDisplay maps each status to its display string, which is also how
// statuses are serialized in the task file. Note the asymmetry with
// Priority: statuses persist by display string, priorities by name.
var statusDisplay = map[Status]string{
	StatusPending:    "Pending",
	StatusInProgress: "In Progress",
	StatusCompleted:  "Completed",
}

var statusesByDisplay = map[string]Status{
	"Pending":     StatusPending,
	"In Progress": StatusInProgress,
	"Completed":   StatusCompleted,
}

// Display returns the human-readable status string.
func (s Status) Display() string {
	return statusDisplay[s]
}

// ParseStatusDisplay resolves a status display string with an exact match.
func ParseStatusDisplay(display string) (Status, error) {
	s, ok := statusesByDisplay[display]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, display)
	}
	return s, nil
}

// Statuses returns all statuses in their natural order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// Task represents one trackable unit of work.
type Task struct {
	Title       string
	Description string
	DueDate     string // YYYY-MM-DD, empty when no due date
	Priority    Priority
	Status      Status
	CreatedAt   string // YYYY-MM-DD HH:MM:SS, set once at construction
	CompletedAt string // set only by MarkComplete, empty until then
}

// NewTask creates a task with the given title, a MEDIUM priority, a
// Pending status and the current local time as its creation timestamp.
func NewTask(title string) (*Task, error) {
	if title == "" {
		return nil, ErrEmptyTaskTitle
	}
	return &Task{
		Title:     title,
		Priority:  PriorityMedium,
		Status:    StatusPending,
		CreatedAt: time.Now().Format(TimestampLayout),
	}, nil
}

// ValidateDueDate checks that a non-empty due date is a real calendar date.
func ValidateDueDate(dueDate string) error {
	if dueDate == "" {
		return nil
	}
	if _, err := time.Parse(DueDateLayout, dueDate); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDueDate, dueDate)
	}
	return nil
}

// MarkComplete marks the task as completed. Each call overwrites
// CompletedAt with a fresh timestamp; callers that care about the original
// completion time must not re-complete a completed task.
func (t *Task) MarkComplete() {
	t.Status = StatusCompleted
	t.CompletedAt = time.Now().Format(TimestampLayout)
}

// IsCompleted returns true if the task has been completed.
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// Render returns the multi-line detail view of the task.
func (t *Task) Render() string {
	due := t.DueDate
	if due == "" {
		due = "No due date"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", t.Title)
	fmt.Fprintf(&b, "Description: %s\n", t.Description)
	fmt.Fprintf(&b, "Status: %s\n", t.Status.Display())
	fmt.Fprintf(&b, "Priority: %s\n", t.Priority.Name())
	fmt.Fprintf(&b, "Due: %s\n", due)
	fmt.Fprintf(&b, "Created: %s", t.CreatedAt)
	if t.CompletedAt != "" {
		fmt.Fprintf(&b, "\nCompleted at: %s", t.CompletedAt)
	}
	return b.String()
}
