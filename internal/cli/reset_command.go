package cli

import (
	"context"
	"fmt"
)

const resetPrompt = "Do you really want to reset?"

// ResetCommand handles the reset command
type ResetCommand struct {
	app       *App
	assumeYes bool
}

// NewResetCommand creates a new reset command handler
func NewResetCommand(app *App) *ResetCommand {
	return &ResetCommand{app: app}
}

// Execute runs the reset command. Nothing is removed unless the user
// confirms or --yes was given.
func (c *ResetCommand) Execute(ctx context.Context, args []string) error {
	printer := c.app.printer()

	if !c.assumeYes {
		confirmed, err := c.app.confirmer.Confirm(resetPrompt)
		if err != nil {
			fmt.Fprintf(c.app.errOut, "%v\n", err)
			return nil
		}
		if !confirmed {
			printer.Message("Alright, nothing was removed.")
			return nil
		}
	}

	repo, err := c.app.store(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("open task store", err)
	}

	if err := repo.ResetTasks(ctx); err != nil {
		return c.app.errorHandler.Handle("reset tasks", err)
	}

	printer.Message("Database reset, all tasks were removed.")
	return nil
}
