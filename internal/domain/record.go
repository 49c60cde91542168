package domain

import "fmt"

// Record is the flat representation of a Task used for persistence.
// Every field is always present in the file; due_date and completed_at are
// null when absent. Priority is serialized by symbolic name, status by its
// display string.
type Record struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	CompletedAt *string `json:"completed_at"`
}

// ToRecord converts the task to its persisted form.
func (t *Task) ToRecord() Record {
	rec := Record{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority.Name(),
		Status:      t.Status.Display(),
		CreatedAt:   t.CreatedAt,
	}
	if t.DueDate != "" {
		due := t.DueDate
		rec.DueDate = &due
	}
	if t.CompletedAt != "" {
		completed := t.CompletedAt
		rec.CompletedAt = &completed
	}
	return rec
}

// FromRecord reconstructs a task from its persisted form. Timestamps are
// preserved verbatim, never regenerated. An unknown priority or status
// string, or a missing required field, fails the whole decode.
func FromRecord(rec Record) (*Task, error) {
	if rec.Title == "" {
		return nil, fmt.Errorf("%w: title", ErrMissingField)
	}
	if rec.Priority == "" {
		return nil, fmt.Errorf("%w: priority", ErrMissingField)
	}
	if rec.Status == "" {
		return nil, fmt.Errorf("%w: status", ErrMissingField)
	}
	if rec.CreatedAt == "" {
		return nil, fmt.Errorf("%w: created_at", ErrMissingField)
	}

	priority, err := ParsePriorityName(rec.Priority)
	if err != nil {
		return nil, err
	}
	status, err := ParseStatusDisplay(rec.Status)
	if err != nil {
		return nil, err
	}

	task := &Task{
		Title:       rec.Title,
		Description: rec.Description,
		Priority:    priority,
		Status:      status,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.DueDate != nil {
		task.DueDate = *rec.DueDate
	}
	if rec.CompletedAt != nil {
		task.CompletedAt = *rec.CompletedAt
	}
	return task, nil
}
