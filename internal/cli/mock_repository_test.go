package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"todo/internal/domain"
	"todo/internal/errors"
)

// mockRepository implements sqlite.Repository in memory for testing
type mockRepository struct {
	tasks    map[int64]domain.Task
	nextID   int64
	failWith error
	closed   bool
	resets   int
}

func newMockRepository() *mockRepository {
	return &mockRepository{tasks: make(map[int64]domain.Task), nextID: 1}
}

func (m *mockRepository) CreateTask(ctx context.Context, name string) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	if name == "" {
		return 0, errors.NewInvalidInputError("name", name, "task name must not be empty")
	}
	id := m.nextID
	m.nextID++
	m.tasks[id] = domain.Task{ID: id, Name: name, CreatedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)}
	return id, nil
}

func (m *mockRepository) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	if m.failWith != nil {
		return domain.Task{}, m.failWith
	}
	task, ok := m.tasks[id]
	if !ok {
		return domain.Task{}, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	return task, nil
}

func (m *mockRepository) ListTasks(ctx context.Context, order domain.ListOrder) ([]domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	tasks := make([]domain.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		if order == domain.OrderByStatusThenInsertion && tasks[i].Done != tasks[j].Done {
			return !tasks[i].Done
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks, nil
}

func (m *mockRepository) ToggleTask(ctx context.Context, id int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	if task, ok := m.tasks[id]; ok {
		m.tasks[id] = task.Toggled()
	}
	return nil
}

func (m *mockRepository) DeleteTask(ctx context.Context, id int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	delete(m.tasks, id)
	return nil
}

func (m *mockRepository) ResetTasks(ctx context.Context) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.tasks = make(map[int64]domain.Task)
	m.resets++
	return nil
}

func (m *mockRepository) Close() error {
	m.closed = true
	return nil
}

// stubConfirmer answers every prompt the same way
type stubConfirmer struct {
	answer  bool
	err     error
	prompts []string
}

func (s *stubConfirmer) Confirm(prompt string) (bool, error) {
	s.prompts = append(s.prompts, prompt)
	return s.answer, s.err
}
