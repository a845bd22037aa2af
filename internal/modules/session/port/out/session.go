package out

import (
	"context"
	"time"

	registrydomain "studytrack/internal/modules/registry/domain"
	"studytrack/internal/modules/session/domain"
)

type SessionLedger interface {
	InsertOpen(ctx context.Context, session domain.Session) error
	// FindOpen returns the owner's open entry, apperrors.ErrNoActiveSession when there is none.
	FindOpen(ctx context.Context, ownerID string) (domain.Session, error)
	Close(ctx context.Context, sessionID string, endedAt time.Time, durationMin int) error
	Get(ctx context.Context, sessionID string) (domain.Session, error)
}

type ActiveSessionStore interface {
	Upsert(ctx context.Context, marker domain.ActiveMarker) error
	// Delete is a no-op when no marker exists.
	Delete(ctx context.Context, ownerID string) error
}

// TaskStateStore is the coordinator's write access to task status. The
// coordinator is the sole writer of these transitions.
type TaskStateStore interface {
	Get(ctx context.Context, taskID string) (registrydomain.Task, error)
	PauseInProgress(ctx context.Context, ownerID string) error
	MarkInProgress(ctx context.Context, taskID string, startedAt time.Time) error
	MarkPaused(ctx context.Context, taskID string) error
	MarkCompleted(ctx context.Context, taskID string, completedAt time.Time) error
}
