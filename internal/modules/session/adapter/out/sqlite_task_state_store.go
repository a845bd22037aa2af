package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	registrydomain "studytrack/internal/modules/registry/domain"
	sessionout "studytrack/internal/modules/session/port/out"
	apperrors "studytrack/internal/platform/errors"
	"studytrack/internal/platform/sqlite"
	"studytrack/internal/platform/tx"
)

// SQLiteTaskStateStore is the coordinator's write path into the tasks
// table. Reads and task creation stay in the registry module.
type SQLiteTaskStateStore struct {
	db *sql.DB
}

func NewSQLiteTaskStateStore(db *sql.DB) sessionout.TaskStateStore {
	return &SQLiteTaskStateStore{db: db}
}

func (s *SQLiteTaskStateStore) Get(ctx context.Context, taskID string) (registrydomain.Task, error) {
	const query = `
SELECT id, user_id, task_name, COALESCE(subject, ''), estimated_minutes, status, started_at, completed_at, task_date, created_at
FROM tasks WHERE id = ?
`
	var (
		task      registrydomain.Task
		status    string
		startedAt sql.NullString
		completed sql.NullString
		createdAt string
	)
	err := tx.From(ctx, s.db).QueryRowContext(ctx, query, taskID).Scan(
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
	)
	if errors.Is(err, sql.ErrNoRows) {
		return registrydomain.Task{}, apperrors.ErrNotFound
	}
	if err != nil {
		return registrydomain.Task{}, fmt.Errorf("get task state: %w", err)
	}
	if task.Status, err = registrydomain.ParseStatus(status); err != nil {
		return registrydomain.Task{}, err
	}
	if task.StartedAt, err = sqlite.ParseNullableTime(startedAt); err != nil {
		return registrydomain.Task{}, err
	}
	if task.CompletedAt, err = sqlite.ParseNullableTime(completed); err != nil {
		return registrydomain.Task{}, err
	}
	if task.CreatedAt, err = sqlite.ParseTime(createdAt); err != nil {
		return registrydomain.Task{}, err
	}
	return task, nil
}

func (s *SQLiteTaskStateStore) PauseInProgress(ctx context.Context, ownerID string) error {
	const stmt = `UPDATE tasks SET status = ? WHERE user_id = ? AND status = ?`
	_, err := tx.From(ctx, s.db).ExecContext(ctx, stmt,
		string(registrydomain.StatusPaused), ownerID, string(registrydomain.StatusInProgress))
	if err != nil {
		return fmt.Errorf("pause in-progress tasks: %w", err)
	}
	return nil
}

func (s *SQLiteTaskStateStore) MarkInProgress(ctx context.Context, taskID string, startedAt time.Time) error {
	const stmt = `UPDATE tasks SET status = ?, started_at = ? WHERE id = ?`
	res, err := tx.From(ctx, s.db).ExecContext(ctx, stmt,
		string(registrydomain.StatusInProgress), sqlite.FormatTime(startedAt), taskID)
	if err != nil {
		return fmt.Errorf("mark task in progress: %w", err)
	}
	return requireRow(res)
}

func (s *SQLiteTaskStateStore) MarkPaused(ctx context.Context, taskID string) error {
	const stmt = `UPDATE tasks SET status = ? WHERE id = ?`
	res, err := tx.From(ctx, s.db).ExecContext(ctx, stmt, string(registrydomain.StatusPaused), taskID)
	if err != nil {
		return fmt.Errorf("mark task paused: %w", err)
	}
	return requireRow(res)
}

func (s *SQLiteTaskStateStore) MarkCompleted(ctx context.Context, taskID string, completedAt time.Time) error {
	const stmt = `UPDATE tasks SET status = ?, completed_at = ? WHERE id = ?`
	res, err := tx.From(ctx, s.db).ExecContext(ctx, stmt,
		string(registrydomain.StatusCompletedOntime), sqlite.FormatTime(completedAt), taskID)
	if err != nil {
		return fmt.Errorf("mark task completed: %w", err)
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
