package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/config"
	"todo/internal/domain"
	apperrors "todo/internal/errors"
	"todo/internal/repository/sqlite"
)

type testApp struct {
	app       *App
	repo      *mockRepository
	confirmer *stubConfirmer
	out       *bytes.Buffer
	errOut    *bytes.Buffer
	opened    int
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := config.NewConfig()
	cfg.Display.Color = false

	ta := &testApp{
		repo:      newMockRepository(),
		confirmer: &stubConfirmer{},
		out:       &bytes.Buffer{},
		errOut:    &bytes.Buffer{},
	}
	open := func(ctx context.Context, cfg *config.Config) (sqlite.Repository, error) {
		ta.opened++
		return ta.repo, nil
	}
	ta.app = NewApp(cfg, open,
		WithIO(strings.NewReader(""), ta.out, ta.errOut),
		WithConfirmer(ta.confirmer),
	)
	t.Cleanup(func() { ta.app.Close() })
	return ta
}

func (ta *testApp) run(args ...string) error {
	ta.out.Reset()
	ta.errOut.Reset()
	return ta.app.Run(context.Background(), args)
}

func TestApp_NoCommand(t *testing.T) {
	ta := setupTestApp(t)

	err := ta.run()

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, ta.errOut.String(), "Usage:")
	assert.Zero(t, ta.opened, "store should not be opened without a command")
}

func TestApp_UnknownCommandShowsHelp(t *testing.T) {
	ta := setupTestApp(t)

	err := ta.run("frobnicate")

	require.NoError(t, err)
	assert.Contains(t, ta.out.String(), "Usage:")
	assert.Contains(t, ta.out.String(), "Available Commands")
	assert.Empty(t, ta.errOut.String())
	assert.Zero(t, ta.opened)
}

func TestApp_Help(t *testing.T) {
	for _, args := range [][]string{{"help"}, {"--help"}, {"-h"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			ta := setupTestApp(t)

			err := ta.run(args...)

			require.NoError(t, err)
			assert.Contains(t, ta.out.String(), "Available Commands")
			assert.Zero(t, ta.opened)
		})
	}
}

func TestApp_Add(t *testing.T) {
	ta := setupTestApp(t)

	require.NoError(t, ta.run("add", "buy", "oat", "milk"))

	assert.Equal(t, "Added task 1: buy oat milk\n", ta.out.String())
	task, err := ta.repo.GetTask(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk", task.Name)
}

func TestApp_Add_RejectsBlankName(t *testing.T) {
	ta := setupTestApp(t)

	err := ta.run("add", "  ", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Empty(t, ta.repo.tasks)
}

func TestApp_Add_MissingArgument(t *testing.T) {
	ta := setupTestApp(t)

	err := ta.run("add")

	require.Error(t, err)
	assert.Empty(t, ta.repo.tasks)
}

func TestApp_List(t *testing.T) {
	ta := setupTestApp(t)

	t.Run("empty", func(t *testing.T) {
		require.NoError(t, ta.run("list"))
		assert.Equal(t, "No tasks found\n", ta.out.String())
	})

	require.NoError(t, ta.run("add", "first"))
	require.NoError(t, ta.run("add", "second"))
	require.NoError(t, ta.run("add", "third"))
	require.NoError(t, ta.run("toggle", "1"))

	t.Run("by id", func(t *testing.T) {
		require.NoError(t, ta.run("list"))

		lines := strings.Split(strings.TrimSpace(ta.out.String()), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "TODO List (sorted by id):", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "   1 | first"))
		assert.Contains(t, lines[1], "Done")
		assert.True(t, strings.HasPrefix(lines[2], "   2 | second"))
		assert.Contains(t, lines[2], "Pending")
		assert.True(t, strings.HasPrefix(lines[3], "   3 | third"))
	})

	t.Run("by status", func(t *testing.T) {
		require.NoError(t, ta.run("list", "--status"))

		lines := strings.Split(strings.TrimSpace(ta.out.String()), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "TODO List (sorted by status):", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "   2 |"))
		assert.True(t, strings.HasPrefix(lines[2], "   3 |"))
		assert.True(t, strings.HasPrefix(lines[3], "   1 |"))
	})

	t.Run("configured default order", func(t *testing.T) {
		ta.app.config.Commands.ListDefaultOrder = string(domain.OrderByStatusThenInsertion)
		defer func() { ta.app.config.Commands.ListDefaultOrder = string(domain.OrderByInsertion) }()

		require.NoError(t, ta.run("list"))
		assert.Contains(t, ta.out.String(), "sorted by status")
	})

	t.Run("ignores extra arguments", func(t *testing.T) {
		require.NoError(t, ta.run("list", "extra"))
		assert.Contains(t, ta.out.String(), "sorted by id")
	})
}

func TestApp_Toggle(t *testing.T) {
	ta := setupTestApp(t)
	require.NoError(t, ta.run("add", "task"))

	require.NoError(t, ta.run("toggle", "1"))
	assert.Equal(t, "Toggled task with ID: 1 (now Done)\n", ta.out.String())

	require.NoError(t, ta.run("toggle", "1"))
	assert.Equal(t, "Toggled task with ID: 1 (now Pending)\n", ta.out.String())

	require.NoError(t, ta.run("toggle", "999"))
	assert.Equal(t, "No task with ID: 999, nothing toggled\n", ta.out.String())
}

func TestApp_Toggle_InvalidArguments(t *testing.T) {
	ta := setupTestApp(t)

	err := ta.run("toggle", "abc")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, "failed to toggle task: invalid input for task_id: must be a positive integer",
		ta.app.errorHandler.Message(err))

	assert.Error(t, ta.run("toggle"))
}

func TestApp_Toggle_IgnoresExtraArguments(t *testing.T) {
	ta := setupTestApp(t)
	require.NoError(t, ta.run("add", "task"))

	require.NoError(t, ta.run("toggle", "1", "2"))

	assert.Equal(t, "Toggled task with ID: 1 (now Done)\n", ta.out.String())
}

func TestApp_Remove(t *testing.T) {
	ta := setupTestApp(t)
	require.NoError(t, ta.run("add", "keep"))
	require.NoError(t, ta.run("add", "drop"))

	require.NoError(t, ta.run("remove", "2"))
	assert.Equal(t, "Removed task with ID: 2\n", ta.out.String())
	assert.Len(t, ta.repo.tasks, 1)

	require.NoError(t, ta.run("rm", "2"))
	assert.Equal(t, "No task with ID: 2, nothing removed\n", ta.out.String())
	assert.Len(t, ta.repo.tasks, 1)

	assert.Error(t, ta.run("remove"))
	assert.Error(t, ta.run("remove", "-1"))
}

func TestApp_Reset(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		answer      bool
		confirmErr  error
		expectReset bool
		expectOut   string
		expectErr   string
	}{
		{
			name:        "confirmed",
			args:        []string{"reset"},
			answer:      true,
			expectReset: true,
			expectOut:   "Database reset, all tasks were removed.\n",
		},
		{
			name:      "declined",
			args:      []string{"reset"},
			answer:    false,
			expectOut: "Alright, nothing was removed.\n",
		},
		{
			name:       "prompt error",
			args:       []string{"reset"},
			confirmErr: ErrNotInteractive,
			expectErr:  ErrNotInteractive.Error() + "\n",
		},
		{
			name:        "assume yes",
			args:        []string{"reset", "--yes"},
			expectReset: true,
			expectOut:   "Database reset, all tasks were removed.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := setupTestApp(t)
			ta.confirmer.answer = tt.answer
			ta.confirmer.err = tt.confirmErr
			require.NoError(t, ta.run("add", "task"))

			require.NoError(t, ta.run(tt.args...))

			assert.Equal(t, tt.expectOut, ta.out.String())
			assert.Equal(t, tt.expectErr, ta.errOut.String())
			if tt.expectReset {
				assert.Equal(t, 1, ta.repo.resets)
				assert.Empty(t, ta.repo.tasks)
			} else {
				assert.Zero(t, ta.repo.resets)
				assert.Len(t, ta.repo.tasks, 1)
			}
		})
	}
}

func TestApp_Reset_IgnoresExtraArguments(t *testing.T) {
	ta := setupTestApp(t)
	ta.confirmer.answer = true
	require.NoError(t, ta.run("add", "task"))

	require.NoError(t, ta.run("reset", "now"))

	assert.Equal(t, 1, ta.repo.resets)
}

func TestApp_Reset_AssumeYesSkipsPrompt(t *testing.T) {
	ta := setupTestApp(t)

	require.NoError(t, ta.run("reset", "-y"))

	assert.Empty(t, ta.confirmer.prompts)
}

func TestApp_Reset_AsksWithPrompt(t *testing.T) {
	ta := setupTestApp(t)

	require.NoError(t, ta.run("reset"))

	assert.Equal(t, []string{"Do you really want to reset?"}, ta.confirmer.prompts)
}

func TestApp_StorageFailureIsSurfaced(t *testing.T) {
	ta := setupTestApp(t)
	ta.repo.failWith = apperrors.NewStorageError("query tasks", errors.New("database disk image is malformed"))

	for _, args := range [][]string{{"add", "x"}, {"list"}, {"toggle", "1"}, {"remove", "1"}, {"reset", "--yes"}} {
		t.Run(args[0], func(t *testing.T) {
			err := ta.run(args...)
			require.Error(t, err)
			assert.True(t, ta.app.errorHandler.IsStorageError(err))
			assert.Contains(t, ta.app.errorHandler.Message(err), "database disk image is malformed")
		})
	}
}

func TestApp_OpenFailureIsSurfaced(t *testing.T) {
	cfg := config.NewConfig()
	openErr := apperrors.NewStorageError("open database", errors.New("unable to open database file"))
	app := NewApp(cfg, func(ctx context.Context, cfg *config.Config) (sqlite.Repository, error) {
		return nil, openErr
	}, WithIO(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}), WithConfirmer(&stubConfirmer{}))

	err := app.Run(context.Background(), []string{"list"})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.NoError(t, app.Close())
}

func TestApp_FlagsOverrideConfig(t *testing.T) {
	ta := setupTestApp(t)
	dir := t.TempDir()

	require.NoError(t, ta.run("--db-dir", dir, "--db-filename", "other.sqlite", "--time-format", "2006", "--no-color", "list"))

	assert.Equal(t, dir, ta.app.config.Database.Dir)
	assert.Equal(t, "other.sqlite", ta.app.config.Database.Filename)
	assert.Equal(t, "2006", ta.app.config.Time.DisplayFormat)
	assert.False(t, ta.app.config.Display.Color)
}

func TestApp_InvalidFlagValueFailsValidation(t *testing.T) {
	ta := setupTestApp(t)

	err := ta.run("--db-filename", "", "list")

	require.Error(t, err)
	assert.Zero(t, ta.opened)
}

func TestApp_OpensStoreOnceAndCloses(t *testing.T) {
	ta := setupTestApp(t)

	require.NoError(t, ta.run("add", "a"))
	require.NoError(t, ta.run("add", "b"))
	require.NoError(t, ta.run("list"))

	assert.Equal(t, 1, ta.opened)
	require.NoError(t, ta.app.Close())
	assert.True(t, ta.repo.closed)
	assert.NoError(t, ta.app.Close(), "second close is a no-op")
}
