package cli

import (
	stderrors "errors"
	"fmt"

	"todo/internal/errors"
	"todo/internal/logging"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages and keeps the original error
// reachable through errors.Is/As.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if errors.ShouldLogError(err) {
		logging.Debugf("%s failed: %v\n", operation, err)
	}

	if _, ok := errors.AsAppError(err); ok {
		return &UserError{Operation: operation, Message: errors.GetUserMessage(err), Err: err}
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// Message returns the text shown to the user for err
func (eh *ErrorHandler) Message(err error) string {
	var userErr *UserError
	if stderrors.As(err, &userErr) {
		return userErr.Error()
	}
	return errors.GetUserMessage(err)
}

// IsInvalidInputError checks if an error is an invalid input error
func (eh *ErrorHandler) IsInvalidInputError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeInvalidInput)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsStorageError checks if an error is a storage error
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStorage)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

// UserError is what command handlers return: a readable message for the
// terminal plus the underlying error.
type UserError struct {
	Operation string
	Message   string
	Err       error
}

func (e *UserError) Error() string {
	return fmt.Sprintf("failed to %s: %s", e.Operation, e.Message)
}

func (e *UserError) Unwrap() error {
	return e.Err
}
