package in

import (
	"context"

	"studytrack/internal/modules/session/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	Stop(ctx context.Context, input dto.StopInput) (dto.StopOutput, error)
	Complete(ctx context.Context, input dto.CompleteInput) error
}
