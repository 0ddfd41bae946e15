package cli

import (
	"context"
)

// AddCommand handles the add command
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	name, err := c.app.validator.TaskNameFromArgs(args)
	if err != nil {
		return c.app.errorHandler.Handle("add task", err)
	}

	repo, err := c.app.store(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("open task store", err)
	}

	id, err := repo.CreateTask(ctx, name)
	if err != nil {
		return c.app.errorHandler.Handle("add task", err)
	}

	c.app.printer().Message("Added task %d: %s", id, name)
	return nil
}
