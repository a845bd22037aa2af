package usecase

import (
	"context"
	"time"

	"studytrack/internal/modules/registry/domain"
	"studytrack/internal/modules/registry/dto"
	registryin "studytrack/internal/modules/registry/port/in"
	"studytrack/internal/modules/registry/service"
	apperrors "studytrack/internal/platform/errors"
)

type Interactor struct {
	svc *service.TaskService
}

func NewInteractor(svc *service.TaskService) registryin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) AddTask(ctx context.Context, input dto.AddTaskInput) (dto.TaskOutput, error) {
	if input.OwnerID == "" {
		return dto.TaskOutput{}, apperrors.ErrInvalidInput
	}
	task, err := i.svc.Add(ctx, input.OwnerID, input.Name, input.Subject, input.EstimatedMin)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return toOutput(task), nil
}

func (i *Interactor) ListForDay(ctx context.Context, ownerID, date string) ([]dto.TaskOutput, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, apperrors.ErrInvalidInput
	}
	tasks, err := i.svc.ListForDay(ctx, ownerID, date)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskOutput, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toOutput(t))
	}
	return out, nil
}

func (i *Interactor) ListToday(ctx context.Context, ownerID string) ([]dto.TaskOutput, error) {
	return i.ListForDay(ctx, ownerID, i.svc.Today(ctx))
}

func toOutput(t domain.Task) dto.TaskOutput {
	return dto.TaskOutput{
		ID:           t.ID,
		OwnerID:      t.OwnerID,
		Name:         t.Name,
		Subject:      t.Subject,
		EstimatedMin: t.EstimatedMin,
		Status:       string(t.Status),
		StartedAt:    t.StartedAt,
		CompletedAt:  t.CompletedAt,
		TaskDate:     t.TaskDate,
		CreatedAt:    t.CreatedAt,
	}
}
