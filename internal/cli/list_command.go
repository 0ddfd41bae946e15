package cli

import (
	"context"
	"fmt"

	"todo/internal/domain"
)

// ListCommand handles the list command
type ListCommand struct {
	app      *App
	byStatus bool
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	order := c.order()

	repo, err := c.app.store(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("open task store", err)
	}

	tasks, err := repo.ListTasks(ctx, order)
	if err != nil {
		return c.app.errorHandler.Handle("list tasks", err)
	}

	printer := c.app.printer()
	if len(tasks) == 0 {
		printer.Message("No tasks found")
		return nil
	}

	printer.Heading(fmt.Sprintf("TODO List (%s):", order.Description()))
	printer.Lines(c.app.presenter().Render(tasks))
	return nil
}

// order resolves the flag against the configured default
func (c *ListCommand) order() domain.ListOrder {
	if c.byStatus {
		return domain.OrderByStatusThenInsertion
	}
	return c.app.config.GetListOrder()
}
