package domain

import (
	"errors"
	"testing"
)

func TestTaskPatch_Apply(t *testing.T) {
	tests := []struct {
		name   string
		patch  TaskPatch
		verify func(t *testing.T, task *Task)
	}{
		{
			name:  "title only",
			patch: TaskPatch{Title: strPtr("New title")},
			verify: func(t *testing.T, task *Task) {
				if task.Title != "New title" {
					t.Errorf("title = %q, want New title", task.Title)
				}
				if task.Description != "original description" {
					t.Errorf("description changed unexpectedly: %q", task.Description)
				}
			},
		},
		{
			name:  "priority is case-insensitive",
			patch: TaskPatch{Priority: strPtr("high")},
			verify: func(t *testing.T, task *Task) {
				if task.Priority != PriorityHigh {
					t.Errorf("priority = %v, want %v", task.Priority, PriorityHigh)
				}
			},
		},
		{
			name:  "status by display string",
			patch: TaskPatch{Status: strPtr("In Progress")},
			verify: func(t *testing.T, task *Task) {
				if task.Status != StatusInProgress {
					t.Errorf("status = %v, want %v", task.Status, StatusInProgress)
				}
			},
		},
		{
			name:  "due date",
			patch: TaskPatch{DueDate: strPtr("2026-12-24")},
			verify: func(t *testing.T, task *Task) {
				if task.DueDate != "2026-12-24" {
					t.Errorf("due date = %q, want 2026-12-24", task.DueDate)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, _ := NewTask("Original")
			task.Description = "original description"

			if err := tt.patch.Apply(task); err != nil {
				t.Fatalf("Apply() unexpected error = %v", err)
			}
			tt.verify(t, task)
		})
	}
}

// A generic status update to Completed must not stamp CompletedAt; only the
// explicit MarkComplete transition does. The two paths stay separate.
func TestTaskPatch_Apply_CompletedStatusDoesNotStampTimestamp(t *testing.T) {
	task, _ := NewTask("Original")

	patch := TaskPatch{Status: strPtr("Completed")}
	if err := patch.Apply(task); err != nil {
		t.Fatalf("Apply() unexpected error = %v", err)
	}

	if task.Status != StatusCompleted {
		t.Errorf("status = %v, want %v", task.Status, StatusCompleted)
	}
	if task.CompletedAt != "" {
		t.Errorf("CompletedAt = %q, want empty after generic status update", task.CompletedAt)
	}
}

func TestTaskPatch_Apply_BadValueLeavesTaskUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		patch   TaskPatch
		wantErr error
	}{
		{
			name:    "unknown priority",
			patch:   TaskPatch{Title: strPtr("Changed"), Priority: strPtr("urgent")},
			wantErr: ErrUnknownPriority,
		},
		{
			name:    "unknown status",
			patch:   TaskPatch{Title: strPtr("Changed"), Status: strPtr("Done")},
			wantErr: ErrUnknownStatus,
		},
		{
			name:    "invalid due date",
			patch:   TaskPatch{Title: strPtr("Changed"), DueDate: strPtr("soon")},
			wantErr: ErrInvalidDueDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, _ := NewTask("Original")
			before := *task

			err := tt.patch.Apply(task)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Apply() error = %v, want %v", err, tt.wantErr)
			}
			if *task != before {
				t.Errorf("Apply() mutated task despite error:\n got  %+v\n want %+v", *task, before)
			}
		})
	}
}

func TestTaskPatch_IsEmpty(t *testing.T) {
	if !(TaskPatch{}).IsEmpty() {
		t.Error("IsEmpty() = false for zero patch")
	}
	if (TaskPatch{Title: strPtr("x")}).IsEmpty() {
		t.Error("IsEmpty() = true for patch with title")
	}
}
