package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"todo/internal/config"
	"todo/internal/errors"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{app: app}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A command-line task list",
		Long: `todo keeps a short list of tasks in a local SQLite database.

EXAMPLES:
  todo add Buy oat milk        # Add a task
  todo list                    # List tasks by id
  todo list --status           # Pending tasks first, then done ones
  todo toggle 3                # Mark task 3 done (or pending again)
  todo remove 3                # Remove task 3
  todo reset                   # Remove every task, after confirmation

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    TODO_DB_DIR                  Database directory (default: ./todo_db)
    TODO_DB_FILENAME             Database filename (default: todo.sqlite)
    TODO_DB_BUSY_TIMEOUT         Wait for locks held by other processes (default: 5s)
    TODO_DB_DIR_PERMISSIONS      Mode for a newly created database directory (default: 755)
    TODO_TIME_DISPLAY_FORMAT     Go time layout for timestamps (default: 2006-01-02 15:04:05)
    TODO_DISPLAY_COLOR           Colour output (default: true)
    TODO_LIST_DEFAULT_ORDER      "id" or "status" (default: id)
    TODO_APP_TIMEOUT             Per-command timeout (default: 30s)
    TODO_DEBUG                   Print debug logging to stderr when set`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.applyFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				// Unrecognised words get the help text, like "help" itself.
				fmt.Fprint(app.out, cmd.UsageString())
				return nil
			}
			fmt.Fprint(app.errOut, cmd.UsageString())
			return errors.NewInvalidInputError("command", "", "no command given")
		},
	}

	root.cmd.SetIn(app.in)
	root.cmd.SetOut(app.out)
	root.cmd.SetErr(app.errOut)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command with args
func (r *RootCommand) Execute(ctx context.Context, args []string) error {
	r.cmd.SetArgs(args)
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides TODO_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TODO_DB_FILENAME)")
	flags.String("time-format", "", "Time display format (overrides TODO_TIME_DISPLAY_FORMAT)")
	flags.Bool("no-color", false, "Disable colour output (overrides TODO_DISPLAY_COLOR)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add [task]",
		Short: "Add a new task",
		Long:  "Add a new pending task. All arguments are joined with spaces to form the task name.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  r.run(NewAddCommand(r.app)),
	}

	listCommand := NewListCommand(r.app)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List all tasks ordered by id.

With --status, pending tasks are listed first and done tasks after them,
each group in the order they were added.`,
		Args: cobra.ArbitraryArgs,
		RunE: r.run(listCommand),
	}
	listCmd.Flags().BoolVarP(&listCommand.byStatus, "status", "s", false, "List pending tasks before done ones")

	toggleCmd := &cobra.Command{
		Use:   "toggle [task id]",
		Short: "Toggle the status of a task (Done/Pending)",
		Args:  cobra.MinimumNArgs(1),
		RunE:  r.run(NewToggleCommand(r.app)),
	}

	removeCmd := &cobra.Command{
		Use:     "remove [task id]",
		Aliases: []string{"rm"},
		Short:   "Remove a task",
		Args:    cobra.MinimumNArgs(1),
		RunE:    r.run(NewRemoveCommand(r.app)),
	}

	resetCommand := NewResetCommand(r.app)
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove every task",
		Long:  "Remove every task. This cannot be undone; you will be asked to confirm unless --yes is given.",
		Args:  cobra.ArbitraryArgs,
		RunE:  r.run(resetCommand),
	}
	resetCmd.Flags().BoolVarP(&resetCommand.assumeYes, "yes", "y", false, "Do not ask for confirmation")

	r.cmd.AddCommand(addCmd, listCmd, toggleCmd, removeCmd, resetCmd)
}

// run adapts a Command handler to cobra, bounding it by the application timeout
func (r *RootCommand) run(handler Command) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), r.app.getAppTimeout())
		defer cancel()

		return handler.Execute(ctx, args)
	}
}

// applyFlags updates the configuration with values from command-line flags
func (r *RootCommand) applyFlags(cmd *cobra.Command) error {
	if r.app.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("db-dir") {
		dir, _ := flags.GetString("db-dir")
		overrides.DBDir = &dir
	}
	if flags.Changed("db-filename") {
		filename, _ := flags.GetString("db-filename")
		overrides.DBFilename = &filename
	}
	if flags.Changed("time-format") {
		format, _ := flags.GetString("time-format")
		overrides.TimeFormat = &format
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		colour := false
		overrides.Color = &colour
	}

	overrides.Apply(r.app.config)
	return r.app.config.Validate()
}
