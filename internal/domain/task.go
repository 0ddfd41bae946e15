package domain

import "time"

// Status is the two-state completion flag of a task as shown to users.
type Status string

const (
	StatusPending Status = "Pending"
	StatusDone    Status = "Done"
)

// Task represents a to-do item in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	Done      bool
}

// NewTask creates a new pending Task with the given name.
func NewTask(name string) Task {
	return Task{
		Name: name,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Name != ""
}

// Status reports whether the task is pending or done.
func (t Task) Status() Status {
	if t.Done {
		return StatusDone
	}
	return StatusPending
}

// Toggled returns a copy of the task with the done flag flipped.
func (t Task) Toggled() Task {
	t.Done = !t.Done
	return t
}
