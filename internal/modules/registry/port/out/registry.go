package out

import (
	"context"

	"studytrack/internal/modules/registry/domain"
)

type TaskStore interface {
	Insert(ctx context.Context, task domain.Task) error
	Get(ctx context.Context, taskID string) (domain.Task, error)
	ListForDay(ctx context.Context, ownerID, date string) ([]domain.Task, error)
}
