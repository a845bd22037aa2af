package usecase

import (
	"context"

	"studytrack/internal/modules/feed/dto"
	feedin "studytrack/internal/modules/feed/port/in"
	feedout "studytrack/internal/modules/feed/port/out"
)

type Interactor struct {
	reader feedout.RosterReader
}

func NewInteractor(reader feedout.RosterReader) feedin.Usecase {
	return &Interactor{reader: reader}
}

func (i *Interactor) Active(ctx context.Context) ([]dto.ActiveStudierOutput, error) {
	roster, err := i.reader.Active(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActiveStudierOutput, 0, len(roster))
	for _, s := range roster {
		out = append(out, dto.ActiveStudierOutput{
			OwnerID:   s.OwnerID,
			Name:      s.Name,
			TaskName:  s.TaskName,
			Subject:   s.Subject,
			StartedAt: s.StartedAt,
		})
	}
	return out, nil
}
