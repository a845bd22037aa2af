package out

import (
	"context"
	"database/sql"
	"fmt"

	"studytrack/internal/modules/feed/domain"
	feedout "studytrack/internal/modules/feed/port/out"
	"studytrack/internal/platform/sqlite"
	"studytrack/internal/platform/tx"
)

type SQLiteRosterReader struct {
	db *sql.DB
}

func NewSQLiteRosterReader(db *sql.DB) feedout.RosterReader {
	return &SQLiteRosterReader{db: db}
}

func (r *SQLiteRosterReader) Active(ctx context.Context) ([]domain.ActiveStudier, error) {
	const query = `
SELECT u.id, u.name, t.task_name, COALESCE(t.subject, ''), t.started_at
FROM active_sessions a
JOIN users u ON a.user_id = u.id
JOIN tasks t ON a.active_task_id = t.id
ORDER BY a.last_seen DESC
`
	rows, err := tx.From(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query active roster: %w", err)
	}
	defer rows.Close()

	roster := []domain.ActiveStudier{}
	for rows.Next() {
		var (
			studier   domain.ActiveStudier
			startedAt sql.NullString
		)
		if err := rows.Scan(&studier.OwnerID, &studier.Name, &studier.TaskName, &studier.Subject, &startedAt); err != nil {
			return nil, fmt.Errorf("scan active roster: %w", err)
		}
		if studier.StartedAt, err = sqlite.ParseNullableTime(startedAt); err != nil {
			return nil, err
		}
		roster = append(roster, studier)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate active roster: %w", err)
	}
	return roster, nil
}
