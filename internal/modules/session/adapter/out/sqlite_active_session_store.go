package out

import (
	"context"
	"database/sql"
	"fmt"

	"studytrack/internal/modules/session/domain"
	sessionout "studytrack/internal/modules/session/port/out"
	"studytrack/internal/platform/sqlite"
	"studytrack/internal/platform/tx"
)

// SQLiteActiveSessionStore keeps the one-row-per-owner live-feed
// projection. It must stay derivable from the ledger's open row.
type SQLiteActiveSessionStore struct {
	db *sql.DB
}

func NewSQLiteActiveSessionStore(db *sql.DB) (sessionout.ActiveSessionStore, error) {
	store := &SQLiteActiveSessionStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteActiveSessionStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS active_sessions (
  user_id TEXT PRIMARY KEY,
  active_task_id TEXT NOT NULL,
  last_seen TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create active_sessions table: %w", err)
	}
	return nil
}

func (s *SQLiteActiveSessionStore) Upsert(ctx context.Context, marker domain.ActiveMarker) error {
	const stmt = `
INSERT INTO active_sessions (user_id, active_task_id, last_seen)
VALUES (?, ?, ?)
ON CONFLICT(user_id) DO UPDATE SET
  active_task_id=excluded.active_task_id,
  last_seen=excluded.last_seen
`
	_, err := tx.From(ctx, s.db).ExecContext(ctx, stmt, marker.OwnerID, marker.TaskID, sqlite.FormatTime(marker.LastSeen))
	if err != nil {
		return fmt.Errorf("upsert active session: %w", err)
	}
	return nil
}

func (s *SQLiteActiveSessionStore) Delete(ctx context.Context, ownerID string) error {
	if _, err := tx.From(ctx, s.db).ExecContext(ctx, `DELETE FROM active_sessions WHERE user_id = ?`, ownerID); err != nil {
		return fmt.Errorf("delete active session: %w", err)
	}
	return nil
}
