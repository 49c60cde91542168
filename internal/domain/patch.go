package domain

// TaskPatch is an explicit field-update request: only non-nil fields are
// applied. Priority values are upper-cased before the name lookup, status
// values are matched against display strings exactly.
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *string
	Priority    *string
	Status      *string
}

// IsEmpty returns true when no field is supplied.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil &&
		p.Priority == nil && p.Status == nil
}

// Apply overwrites the supplied fields on the task. Enum values are
// resolved before anything is touched, so a bad value leaves the task
// unchanged. Setting Status to "Completed" through a patch deliberately
// does NOT stamp CompletedAt; only MarkComplete does that.
func (p TaskPatch) Apply(t *Task) error {
	var priority Priority
	if p.Priority != nil {
		parsed, err := ParsePriorityInput(*p.Priority)
		if err != nil {
			return err
		}
		priority = parsed
	}

	var status Status
	if p.Status != nil {
		parsed, err := ParseStatusDisplay(*p.Status)
		if err != nil {
			return err
		}
		status = parsed
	}

	if p.DueDate != nil {
		if err := ValidateDueDate(*p.DueDate); err != nil {
			return err
		}
	}

	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Priority != nil {
		t.Priority = priority
	}
	if p.Status != nil {
		t.Status = status
	}
	return nil
}
