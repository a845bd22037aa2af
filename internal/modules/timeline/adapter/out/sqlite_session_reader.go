package out

import (
	"context"
	"database/sql"
	"fmt"

	"studytrack/internal/modules/timeline/domain"
	timelineout "studytrack/internal/modules/timeline/port/out"
	"studytrack/internal/platform/sqlite"
	"studytrack/internal/platform/tx"
)

type SQLiteSessionReader struct {
	db *sql.DB
}

func NewSQLiteSessionReader(db *sql.DB) timelineout.SessionReader {
	return &SQLiteSessionReader{db: db}
}

func (r *SQLiteSessionReader) ListForDay(ctx context.Context, ownerID, date string) ([]domain.Entry, error) {
	const query = `
SELECT ts.id, ts.task_id, t.task_name, COALESCE(t.subject, ''), ts.started_at, ts.ended_at, ts.duration_minutes
FROM task_sessions ts
JOIN tasks t ON ts.task_id = t.id
WHERE ts.user_id = ? AND ts.session_date = ?
ORDER BY ts.started_at ASC
`
	rows, err := tx.From(ctx, r.db).QueryContext(ctx, query, ownerID, date)
	if err != nil {
		return nil, fmt.Errorf("list day sessions: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		var (
			entry     domain.Entry
			startedAt string
			endedAt   sql.NullString
			duration  sql.NullInt64
		)
		if err := rows.Scan(&entry.SessionID, &entry.TaskID, &entry.TaskName, &entry.Subject, &startedAt, &endedAt, &duration); err != nil {
			return nil, fmt.Errorf("scan day session: %w", err)
		}
		if entry.StartedAt, err = sqlite.ParseTime(startedAt); err != nil {
			return nil, err
		}
		if entry.EndedAt, err = sqlite.ParseNullableTime(endedAt); err != nil {
			return nil, err
		}
		if duration.Valid {
			minutes := int(duration.Int64)
			entry.DurationMin = &minutes
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate day sessions: %w", err)
	}
	return entries, nil
}
