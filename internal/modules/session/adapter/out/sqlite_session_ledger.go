package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"studytrack/internal/modules/session/domain"
	sessionout "studytrack/internal/modules/session/port/out"
	apperrors "studytrack/internal/platform/errors"
	"studytrack/internal/platform/sqlite"
	"studytrack/internal/platform/tx"
)

type SQLiteSessionLedger struct {
	db *sql.DB
}

func NewSQLiteSessionLedger(db *sql.DB) (sessionout.SessionLedger, error) {
	ledger := &SQLiteSessionLedger{db: db}
	if err := ledger.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return ledger, nil
}

func (l *SQLiteSessionLedger) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS task_sessions (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  task_id TEXT NOT NULL,
  started_at TEXT NOT NULL,
  ended_at TEXT,
  duration_minutes INTEGER,
  session_date TEXT NOT NULL,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_user_date ON task_sessions(user_id, session_date);
CREATE UNIQUE INDEX IF NOT EXISTS idx_sessions_open_owner ON task_sessions(user_id) WHERE ended_at IS NULL;
`
	if _, err := l.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create task_sessions table: %w", err)
	}
	return nil
}

func (l *SQLiteSessionLedger) InsertOpen(ctx context.Context, session domain.Session) error {
	const stmt = `
INSERT INTO task_sessions (id, user_id, task_id, started_at, ended_at, duration_minutes, session_date, created_at)
VALUES (?, ?, ?, ?, NULL, NULL, ?, ?)
`
	_, err := tx.From(ctx, l.db).ExecContext(ctx, stmt,
		session.ID,
		session.OwnerID,
		session.TaskID,
		sqlite.FormatTime(session.StartedAt),
		session.SessionDate,
		sqlite.FormatTime(session.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert open session: %w", err)
	}
	return nil
}

func (l *SQLiteSessionLedger) FindOpen(ctx context.Context, ownerID string) (domain.Session, error) {
	const query = `
SELECT id, user_id, task_id, started_at, ended_at, duration_minutes, session_date, created_at
FROM task_sessions WHERE user_id = ? AND ended_at IS NULL
`
	session, err := scanSession(tx.From(ctx, l.db).QueryRowContext(ctx, query, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, apperrors.ErrNoActiveSession
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("find open session: %w", err)
	}
	return session, nil
}

func (l *SQLiteSessionLedger) Close(ctx context.Context, sessionID string, endedAt time.Time, durationMin int) error {
	const stmt = `UPDATE task_sessions SET ended_at = ?, duration_minutes = ? WHERE id = ? AND ended_at IS NULL`
	res, err := tx.From(ctx, l.db).ExecContext(ctx, stmt, sqlite.FormatTime(endedAt), durationMin, sessionID)
	if err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (l *SQLiteSessionLedger) Get(ctx context.Context, sessionID string) (domain.Session, error) {
	const query = `
SELECT id, user_id, task_id, started_at, ended_at, duration_minutes, session_date, created_at
FROM task_sessions WHERE id = ?
`
	session, err := scanSession(tx.From(ctx, l.db).QueryRowContext(ctx, query, sessionID))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, apperrors.ErrNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (domain.Session, error) {
	var (
		session   domain.Session
		startedAt string
		endedAt   sql.NullString
		duration  sql.NullInt64
		createdAt string
	)
	if err := row.Scan(
		&session.ID,
		&session.OwnerID,
		&session.TaskID,
		&startedAt,
		&endedAt,
		&duration,
		&session.SessionDate,
		&createdAt,
	); err != nil {
		return domain.Session{}, err
	}
	var err error
	if session.StartedAt, err = sqlite.ParseTime(startedAt); err != nil {
		return domain.Session{}, err
	}
	if session.EndedAt, err = sqlite.ParseNullableTime(endedAt); err != nil {
		return domain.Session{}, err
	}
	if duration.Valid {
		minutes := int(duration.Int64)
		session.DurationMin = &minutes
	}
	if session.CreatedAt, err = sqlite.ParseTime(createdAt); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}
