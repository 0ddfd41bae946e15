package sqlite

import (
	"fmt"

	"todo/internal/domain"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a database row.
// Columns are expected in the order id, name, created_at, done.
func ScanTask(scanner Scanner) (domain.Task, error) {
	var (
		task      domain.Task
		createdAt string
		done      int64
	)

	if err := scanner.Scan(&task.ID, &task.Name, &createdAt, &done); err != nil {
		return domain.Task{}, err
	}

	parsed, err := ParseTimeFromDB(createdAt)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %d has malformed created_at %q: %w", task.ID, createdAt, err)
	}
	task.CreatedAt = parsed
	task.Done = done != 0

	return task, nil
}

// ScanTasks scans multiple tasks from database rows. The result is never nil.
func ScanTasks(rows Rows) ([]domain.Task, error) {
	tasks := []domain.Task{}
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
