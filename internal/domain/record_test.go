package domain

import (
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestToRecord(t *testing.T) {
	task := &Task{
		Title:       "Buy milk",
		Description: "2 liters",
		DueDate:     "2026-09-01",
		Priority:    PriorityHigh,
		Status:      StatusInProgress,
		CreatedAt:   "2026-08-20 09:15:00",
	}

	rec := task.ToRecord()

	if rec.Title != "Buy milk" || rec.Description != "2 liters" {
		t.Errorf("ToRecord() title/description = %q/%q", rec.Title, rec.Description)
	}
	if rec.Priority != "HIGH" {
		t.Errorf("ToRecord() priority = %q, want HIGH", rec.Priority)
	}
	if rec.Status != "In Progress" {
		t.Errorf("ToRecord() status = %q, want In Progress", rec.Status)
	}
	if rec.DueDate == nil || *rec.DueDate != "2026-09-01" {
		t.Errorf("ToRecord() due_date = %v, want 2026-09-01", rec.DueDate)
	}
	if rec.CompletedAt != nil {
		t.Errorf("ToRecord() completed_at = %v, want nil", rec.CompletedAt)
	}
}

func TestToRecord_NullsWhenAbsent(t *testing.T) {
	task, _ := NewTask("Bare")
	rec := task.ToRecord()

	if rec.DueDate != nil {
		t.Errorf("ToRecord() due_date = %v, want nil", rec.DueDate)
	}
	if rec.CompletedAt != nil {
		t.Errorf("ToRecord() completed_at = %v, want nil", rec.CompletedAt)
	}
}

func TestFromRecord_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		task Task
	}{
		{
			name: "minimal pending task",
			task: Task{
				Title:     "Buy milk",
				Priority:  PriorityMedium,
				Status:    StatusPending,
				CreatedAt: "2026-08-20 09:15:00",
			},
		},
		{
			name: "full completed task",
			task: Task{
				Title:       "Write report",
				Description: "Quarterly numbers",
				DueDate:     "2026-09-01",
				Priority:    PriorityHigh,
				Status:      StatusCompleted,
				CreatedAt:   "2026-08-01 08:00:00",
				CompletedAt: "2026-08-19 17:45:12",
			},
		},
		{
			name: "low priority in progress",
			task: Task{
				Title:     "Tidy desk",
				Priority:  PriorityLow,
				Status:    StatusInProgress,
				CreatedAt: "2026-08-10 12:00:00",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromRecord(tt.task.ToRecord())
			if err != nil {
				t.Fatalf("FromRecord() unexpected error = %v", err)
			}
			if *got != tt.task {
				t.Errorf("round trip mismatch:\n got  %+v\n want %+v", *got, tt.task)
			}
		})
	}
}

func TestFromRecord_Errors(t *testing.T) {
	valid := Record{
		Title:     "Buy milk",
		Priority:  "MEDIUM",
		Status:    "Pending",
		CreatedAt: "2026-08-20 09:15:00",
	}

	tests := []struct {
		name    string
		mutate  func(r *Record)
		wantErr error
	}{
		{
			name:    "missing title",
			mutate:  func(r *Record) { r.Title = "" },
			wantErr: ErrMissingField,
		},
		{
			name:    "missing priority",
			mutate:  func(r *Record) { r.Priority = "" },
			wantErr: ErrMissingField,
		},
		{
			name:    "missing created_at",
			mutate:  func(r *Record) { r.CreatedAt = "" },
			wantErr: ErrMissingField,
		},
		{
			name:    "unknown priority name",
			mutate:  func(r *Record) { r.Priority = "URGENT" },
			wantErr: ErrUnknownPriority,
		},
		{
			name:    "lower case priority rejected",
			mutate:  func(r *Record) { r.Priority = "medium" },
			wantErr: ErrUnknownPriority,
		},
		{
			name:    "unknown status string",
			mutate:  func(r *Record) { r.Status = "Done" },
			wantErr: ErrUnknownStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := valid
			tt.mutate(&rec)

			_, err := FromRecord(rec)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FromRecord() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFromRecord_PreservesTimestampsVerbatim(t *testing.T) {
	rec := Record{
		Title:       "Old task",
		Priority:    "LOW",
		Status:      "Completed",
		CreatedAt:   "2020-01-01 00:00:00",
		CompletedAt: strPtr("2020-06-15 23:59:59"),
	}

	task, err := FromRecord(rec)
	if err != nil {
		t.Fatalf("FromRecord() unexpected error = %v", err)
	}
	if task.CreatedAt != "2020-01-01 00:00:00" {
		t.Errorf("FromRecord() CreatedAt = %q, want verbatim value", task.CreatedAt)
	}
	if task.CompletedAt != "2020-06-15 23:59:59" {
		t.Errorf("FromRecord() CompletedAt = %q, want verbatim value", task.CompletedAt)
	}
}
