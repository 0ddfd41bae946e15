package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"todo/internal/domain"
	"todo/internal/errors"
	"todo/internal/logging"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database, used by tests.
const MemoryPath = ":memory:"

const (
	defaultDirPermissions os.FileMode = 0755
	defaultBusyTimeout                = 5 * time.Second
)

// Repository defines the task store operations
type Repository interface {
	// CreateTask persists a new pending task and returns its store-assigned id.
	CreateTask(ctx context.Context, name string) (int64, error)

	GetTask(ctx context.Context, id int64) (domain.Task, error)
	ListTasks(ctx context.Context, order domain.ListOrder) ([]domain.Task, error)

	// ToggleTask and DeleteTask succeed without changes when id does not exist.
	ToggleTask(ctx context.Context, id int64) error
	DeleteTask(ctx context.Context, id int64) error

	// ResetTasks removes every task. Ids are not reused afterwards.
	ResetTasks(ctx context.Context) error

	Close() error
}

// Option configures Open.
type Option func(*options)

type options struct {
	now            func() time.Time
	dirPermissions os.FileMode
	busyTimeout    time.Duration
}

// WithClock overrides the clock used to stamp created_at.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithDirPermissions sets the mode used when the database directory has to be created.
func WithDirPermissions(perm os.FileMode) Option {
	return func(o *options) { o.dirPermissions = perm }
}

// WithBusyTimeout sets how long SQLite waits on a lock held by another process.
func WithBusyTimeout(d time.Duration) Option {
	return func(o *options) { o.busyTimeout = d }
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

// Open prepares the database at dbPath and returns a ready repository.
// The parent directory is created when missing; a failure to create it is
// logged and the open is still attempted so the driver reports the real cause.
func Open(ctx context.Context, dbPath string, opts ...Option) (*SQLiteRepository, error) {
	o := options{
		now:            time.Now,
		dirPermissions: defaultDirPermissions,
		busyTimeout:    defaultBusyTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if !isMemoryPath(dbPath) {
		ensureDir(filepath.Dir(dbPath), o.dirPermissions)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// A single connection keeps :memory: databases alive and serialises
	// statements within the process.
	db.SetMaxOpenConns(1)

	if err := configure(ctx, db, o.busyTimeout); err != nil {
		db.Close()
		return nil, errors.NewStorageError("configure database", err)
	}

	if err := EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("ensure schema", err)
	}

	logging.Debugln("opened task database", dbPath)
	return &SQLiteRepository{db: db, now: o.now}, nil
}

func configure(ctx context.Context, db *sql.DB, busyTimeout time.Duration) error {
	pragma := fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeout.Milliseconds())
	_, err := db.ExecContext(ctx, pragma)
	return err
}

func ensureDir(dir string, perm os.FileMode) {
	if dir == "" || dir == "." {
		return
	}
	if _, err := os.Stat(dir); err == nil {
		return
	}
	if err := os.MkdirAll(dir, perm); err != nil {
		logging.Errorf("creating folder '%s': %v\n", dir, err)
		return
	}
	logging.Infof("Folder '%s' created.\n", dir)
}

func isMemoryPath(dbPath string) bool {
	return dbPath == MemoryPath || strings.Contains(dbPath, "mode=memory") || strings.HasPrefix(dbPath, "file::memory:")
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask creates a new task
func (r *SQLiteRepository) CreateTask(ctx context.Context, name string) (int64, error) {
	task := domain.NewTask(name)
	if !task.IsValid() {
		return 0, errors.NewInvalidInputError("name", name, "task name must not be empty")
	}

	query := `INSERT INTO tasks (name, created_at, done) VALUES (?, ?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, task.Name, FormatTimeForDB(r.now()), FormatBoolForDB(task.Done))
	if err != nil {
		return 0, err
	}

	logging.Debugf("created task %d\n", id)
	return id, nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	query := `SELECT id, name, created_at, done FROM tasks WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks in the requested order
func (r *SQLiteRepository) ListTasks(ctx context.Context, order domain.ListOrder) ([]domain.Task, error) {
	var query string
	switch order {
	case domain.OrderByInsertion:
		query = `SELECT id, name, created_at, done FROM tasks ORDER BY id ASC`
	case domain.OrderByStatusThenInsertion:
		query = `SELECT id, name, created_at, done FROM tasks ORDER BY done ASC, id ASC`
	default:
		return nil, errors.NewInvalidInputError("order", string(order), "unsupported list order")
	}

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// ToggleTask flips the done flag of a task
func (r *SQLiteRepository) ToggleTask(ctx context.Context, id int64) error {
	query := `UPDATE tasks SET done = 1 - done WHERE id = ?`
	rows, err := ExecuteWithRowsAffected(ctx, r.db, query, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		logging.Debugf("toggle: no task with id %d\n", id)
	}
	return nil
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	rows, err := ExecuteWithRowsAffected(ctx, r.db, query, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		logging.Debugf("delete: no task with id %d\n", id)
	}
	return nil
}

// ResetTasks deletes every task
func (r *SQLiteRepository) ResetTasks(ctx context.Context) error {
	rows, err := ExecuteWithRowsAffected(ctx, r.db, `DELETE FROM tasks`)
	if err != nil {
		return err
	}
	logging.Debugf("reset removed %d tasks\n", rows)
	return nil
}
