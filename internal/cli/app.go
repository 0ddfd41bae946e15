package cli

import (
	"context"
	"io"
	"os"
	"time"

	"todo/internal/config"
	"todo/internal/presenter"
	"todo/internal/repository/sqlite"
	"todo/internal/validation"
)

// RepositoryOpener opens the task store once configuration is final.
type RepositoryOpener func(ctx context.Context, cfg *config.Config) (sqlite.Repository, error)

// App represents the main CLI application
type App struct {
	config       *config.Config
	open         RepositoryOpener
	repo         sqlite.Repository
	validator    *validation.TaskValidator
	errorHandler *ErrorHandler
	confirmer    Confirmer

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// AppOption customises an App, mostly for tests.
type AppOption func(*App)

// WithIO replaces the standard streams.
func WithIO(in io.Reader, out, errOut io.Writer) AppOption {
	return func(a *App) {
		a.in = in
		a.out = out
		a.errOut = errOut
	}
}

// WithConfirmer replaces the interactive yes/no prompt.
func WithConfirmer(c Confirmer) AppOption {
	return func(a *App) { a.confirmer = c }
}

// NewApp creates a new CLI application. The store is opened through open on
// first use, after command line flags have been applied to cfg.
func NewApp(cfg *config.Config, open RepositoryOpener, opts ...AppOption) *App {
	app := &App{
		config:       cfg,
		open:         open,
		validator:    validation.NewTaskValidator(),
		errorHandler: NewErrorHandler(),
		in:           os.Stdin,
		out:          os.Stdout,
		errOut:       os.Stderr,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.confirmer == nil {
		app.confirmer = NewPromptConfirmer(app.in, app.out)
	}
	return app
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	root := NewRootCommand(a)
	return root.Execute(ctx, args)
}

// Close releases the store if it was opened. It is safe to call more than once.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	err := a.repo.Close()
	a.repo = nil
	return err
}

// store returns the open repository, opening it on first use
func (a *App) store(ctx context.Context) (sqlite.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}
	repo, err := a.open(ctx, a.config)
	if err != nil {
		return nil, err
	}
	a.repo = repo
	return repo, nil
}

func (a *App) presenter() *presenter.Presenter {
	return presenter.New(a.config.Time.DisplayFormat)
}

func (a *App) printer() *presenter.Printer {
	return presenter.NewPrinter(a.out, a.config.Display.Color)
}

// getAppTimeout returns the configured application timeout
func (a *App) getAppTimeout() time.Duration {
	if a.config != nil && a.config.Application.Timeout > 0 {
		return a.config.Application.Timeout
	}
	return 30 * time.Second
}
