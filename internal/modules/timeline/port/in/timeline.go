package in

import (
	"context"

	"studytrack/internal/modules/timeline/dto"
)

type Usecase interface {
	GetDay(ctx context.Context, ownerID, date string) (dto.DayOutput, error)
}
