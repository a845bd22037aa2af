package in

import (
	"context"

	"studytrack/internal/modules/registry/dto"
)

type Usecase interface {
	AddTask(ctx context.Context, input dto.AddTaskInput) (dto.TaskOutput, error)
	ListForDay(ctx context.Context, ownerID, date string) ([]dto.TaskOutput, error)
	ListToday(ctx context.Context, ownerID string) ([]dto.TaskOutput, error)
}
