package in

import (
	"context"

	"studytrack/internal/modules/feed/dto"
)

type Usecase interface {
	Active(ctx context.Context) ([]dto.ActiveStudierOutput, error)
}
