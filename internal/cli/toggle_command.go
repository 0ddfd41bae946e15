package cli

import (
	"context"

	"todo/internal/errors"
)

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	app *App
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{app: app}
}

// Execute runs the toggle command
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "toggle", "usage: todo toggle [task id]")
	}
	id, err := c.app.validator.ParseTaskID(args[0])
	if err != nil {
		return c.app.errorHandler.Handle("toggle task", err)
	}

	repo, err := c.app.store(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("open task store", err)
	}

	if err := repo.ToggleTask(ctx, id); err != nil {
		return c.app.errorHandler.Handle("toggle task", err)
	}

	// The store treats unknown ids as a no-op; tell the user which case applied.
	printer := c.app.printer()
	task, err := repo.GetTask(ctx, id)
	switch {
	case err == nil:
		printer.Message("Toggled task with ID: %d (now %s)", id, task.Status())
	case c.app.errorHandler.IsNotFoundError(err):
		printer.Message("No task with ID: %d, nothing toggled", id)
	default:
		return c.app.errorHandler.Handle("read task", err)
	}
	return nil
}
