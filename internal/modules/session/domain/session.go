package domain

import (
	"time"

	registrydomain "studytrack/internal/modules/registry/domain"
)

// Session is one ledger entry: an interval of work against a task. A nil
// EndedAt means the session is still running.
type Session struct {
	ID          string
	OwnerID     string
	TaskID      string
	StartedAt   time.Time
	EndedAt     *time.Time
	DurationMin *int
	SessionDate string
	CreatedAt   time.Time
}

func (s Session) Open() bool {
	return s.EndedAt == nil
}

// NewOpen opens a ledger entry at start, dating it to start's calendar day.
func NewOpen(id, ownerID, taskID string, start time.Time) Session {
	return Session{
		ID:          id,
		OwnerID:     ownerID,
		TaskID:      taskID,
		StartedAt:   start,
		SessionDate: start.Format(registrydomain.DateLayout),
		CreatedAt:   start,
	}
}

// RoundedMinutes is round((end-start) in minutes), clamped non-negative.
func RoundedMinutes(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	elapsed := end.Sub(start)
	return int((elapsed + 30*time.Second) / time.Minute)
}

// ActiveMarker is the one-row-per-owner live-feed projection. It is a
// cache over the ledger's open row, never the source of truth.
type ActiveMarker struct {
	OwnerID  string
	TaskID   string
	LastSeen time.Time
}
