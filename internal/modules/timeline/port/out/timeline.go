package out

import (
	"context"

	"studytrack/internal/modules/timeline/domain"
)

// SessionReader is the timeline's read-only view of the ledger, joined
// with task names and subjects, ascending by start time.
type SessionReader interface {
	ListForDay(ctx context.Context, ownerID, date string) ([]domain.Entry, error)
}
