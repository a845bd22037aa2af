package out

import (
	"context"

	"studytrack/internal/modules/feed/domain"
)

// RosterReader joins the active-session markers with task and user
// identity. Markers live until the coordinator removes them; the feed
// applies no staleness eviction of its own.
type RosterReader interface {
	Active(ctx context.Context) ([]domain.ActiveStudier, error)
}
