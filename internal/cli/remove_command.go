package cli

import (
	"context"

	"todo/internal/errors"
)

// RemoveCommand handles the remove command
type RemoveCommand struct {
	app *App
}

// NewRemoveCommand creates a new remove command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{app: app}
}

// Execute runs the remove command
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "remove", "usage: todo remove [task id]")
	}
	id, err := c.app.validator.ParseTaskID(args[0])
	if err != nil {
		return c.app.errorHandler.Handle("remove task", err)
	}

	repo, err := c.app.store(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("open task store", err)
	}

	_, lookupErr := repo.GetTask(ctx, id)
	if lookupErr != nil && !c.app.errorHandler.IsNotFoundError(lookupErr) {
		return c.app.errorHandler.Handle("read task", lookupErr)
	}

	if err := repo.DeleteTask(ctx, id); err != nil {
		return c.app.errorHandler.Handle("remove task", err)
	}

	printer := c.app.printer()
	if lookupErr != nil {
		printer.Message("No task with ID: %d, nothing removed", id)
		return nil
	}
	printer.Message("Removed task with ID: %d", id)
	return nil
}
