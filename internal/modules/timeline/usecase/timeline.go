package usecase

import (
	"context"
	"time"

	"studytrack/internal/modules/timeline/domain"
	"studytrack/internal/modules/timeline/dto"
	timelinein "studytrack/internal/modules/timeline/port/in"
	timelineout "studytrack/internal/modules/timeline/port/out"
	"studytrack/internal/platform/clock"
	apperrors "studytrack/internal/platform/errors"
)

const dateLayout = "2006-01-02"

type Interactor struct {
	clock  clock.Clock
	reader timelineout.SessionReader
}

func NewInteractor(clock clock.Clock, reader timelineout.SessionReader) timelinein.Usecase {
	return &Interactor{clock: clock, reader: reader}
}

func (i *Interactor) GetDay(ctx context.Context, ownerID, date string) (dto.DayOutput, error) {
	if ownerID == "" {
		return dto.DayOutput{}, apperrors.ErrInvalidInput
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return dto.DayOutput{}, apperrors.ErrInvalidInput
	}
	entries, err := i.reader.ListForDay(ctx, ownerID, date)
	if err != nil {
		return dto.DayOutput{}, err
	}

	now := i.clock.Now()
	grid := domain.BuildGrid(entries, now)
	summary := domain.Summarize(entries, now)

	out := dto.DayOutput{
		Sessions: make([]dto.SessionRecord, 0, len(entries)),
		Grid:     make([][]dto.BlockOutput, domain.HoursPerDay),
		Summary:  dto.SummaryOutput{TotalMinutes: summary.TotalMinutes, TaskCount: summary.TaskCount},
	}
	for _, e := range entries {
		out.Sessions = append(out.Sessions, dto.SessionRecord{
			SessionID:   e.SessionID,
			TaskID:      e.TaskID,
			TaskName:    e.TaskName,
			Subject:     e.Subject,
			StartedAt:   e.StartedAt,
			EndedAt:     e.EndedAt,
			DurationMin: e.DurationMin,
		})
	}
	for hour, blocks := range grid {
		rendered := make([]dto.BlockOutput, 0, len(blocks))
		for _, b := range blocks {
			rendered = append(rendered, dto.BlockOutput{
				Top:         b.Top,
				Height:      b.Height,
				Subject:     b.Subject,
				TaskName:    b.TaskName,
				DurationMin: b.DurationMin,
				Labeled:     b.Labeled,
			})
		}
		out.Grid[hour] = rendered
	}
	return out, nil
}
