package validation

import (
	"strings"

	"todo/internal/errors"
)

// TaskValidator checks user input before it reaches the task store
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// TaskNameFromArgs joins command arguments into a task name and validates it.
// The returned name is trimmed.
func (tv *TaskValidator) TaskNameFromArgs(args []string) (string, error) {
	return tv.GetValidTaskName(strings.Join(args, " "))
}

// GetValidTaskName trims name and rejects it when nothing is left
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if !tv.validator.IsNonEmptyString(name) {
		return "", errors.NewInvalidInputError("task_name", name, "task name is required")
	}
	return tv.validator.TrimAndValidateString(name), nil
}

// ParseTaskID parses a task id argument, which must be a positive integer
func (tv *TaskValidator) ParseTaskID(raw string) (int64, error) {
	id, ok := tv.validator.ParseInt64(raw)
	if !ok || !tv.validator.IsValidTaskID(id) {
		return 0, errors.NewInvalidInputError("task_id", raw, "must be a positive integer")
	}
	return id, nil
}
