package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"studytrack/internal/modules/registry/domain"
	registryout "studytrack/internal/modules/registry/port/out"
	apperrors "studytrack/internal/platform/errors"
	"studytrack/internal/platform/sqlite"
	"studytrack/internal/platform/tx"
)

type SQLiteTaskStore struct {
	db *sql.DB
}

func NewSQLiteTaskStore(db *sql.DB) (registryout.TaskStore, error) {
	store := &SQLiteTaskStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteTaskStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS tasks (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  task_name TEXT NOT NULL,
  subject TEXT,
  estimated_minutes INTEGER NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  started_at TEXT,
  completed_at TEXT,
  task_date TEXT NOT NULL,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_user_date ON tasks(user_id, task_date);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	return nil
}

func (s *SQLiteTaskStore) Insert(ctx context.Context, task domain.Task) error {
	const stmt = `
INSERT INTO tasks (id, user_id, task_name, subject, estimated_minutes, status, started_at, completed_at, task_date, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`
	_, err := tx.From(ctx, s.db).ExecContext(ctx, stmt,
		task.ID,
		task.OwnerID,
		task.Name,
		task.Subject,
		task.EstimatedMin,
		string(task.Status),
		sqlite.FormatNullableTime(task.StartedAt),
		sqlite.FormatNullableTime(task.CompletedAt),
		task.TaskDate,
		sqlite.FormatTime(task.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (s *SQLiteTaskStore) Get(ctx context.Context, taskID string) (domain.Task, error) {
	const query = `
SELECT id, user_id, task_name, COALESCE(subject, ''), estimated_minutes, status, started_at, completed_at, task_date, created_at
FROM tasks WHERE id = ?
`
	task, err := scanTask(tx.From(ctx, s.db).QueryRowContext(ctx, query, taskID))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, apperrors.ErrNotFound
	}
	if err != nil {
		return domain.Task{}, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

func (s *SQLiteTaskStore) ListForDay(ctx context.Context, ownerID, date string) ([]domain.Task, error) {
	const query = `
SELECT id, user_id, task_name, COALESCE(subject, ''), estimated_minutes, status, started_at, completed_at, task_date, created_at
FROM tasks WHERE user_id = ? AND task_date = ?
ORDER BY created_at ASC
`
	rows, err := tx.From(ctx, s.db).QueryContext(ctx, query, ownerID, date)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (domain.Task, error) {
	var (
		task      domain.Task
		status    string
		startedAt sql.NullString
		completed sql.NullString
		createdAt string
	)
	if err := row.Scan(
		&task.ID,
		&task.OwnerID,
		&task.Name,
		&task.Subject,
		&task.EstimatedMin,
		&status,
		&startedAt,
		&completed,
		&task.TaskDate,
		&createdAt,
	); err != nil {
		return domain.Task{}, err
	}
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return domain.Task{}, err
	}
	task.Status = parsed
	if task.StartedAt, err = sqlite.ParseNullableTime(startedAt); err != nil {
		return domain.Task{}, err
	}
	if task.CompletedAt, err = sqlite.ParseNullableTime(completed); err != nil {
		return domain.Task{}, err
	}
	if task.CreatedAt, err = sqlite.ParseTime(createdAt); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}
