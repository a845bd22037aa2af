package service

import (
	"context"
	"fmt"
	"strings"

	"studytrack/internal/modules/registry/domain"
	registryout "studytrack/internal/modules/registry/port/out"
	"studytrack/internal/platform/clock"
	apperrors "studytrack/internal/platform/errors"
	"studytrack/internal/platform/id"
)

type TaskService struct {
	clock clock.Clock
	idGen id.Generator
	store registryout.TaskStore
}

func NewTaskService(clock clock.Clock, idGen id.Generator, store registryout.TaskStore) *TaskService {
	return &TaskService{clock: clock, idGen: idGen, store: store}
}

// Add creates a pending task scheduled for today.
func (s *TaskService) Add(ctx context.Context, ownerID, name, subject string, estimatedMin int) (domain.Task, error) {
	now := s.clock.Now()
	task := domain.Task{
		ID:           s.idGen.New(),
		OwnerID:      ownerID,
		Name:         strings.TrimSpace(name),
		Subject:      strings.TrimSpace(subject),
		EstimatedMin: estimatedMin,
		Status:       domain.StatusPending,
		TaskDate:     now.Format(domain.DateLayout),
		CreatedAt:    now,
	}
	if err := task.Validate(); err != nil {
		return domain.Task{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := s.store.Insert(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) ListForDay(ctx context.Context, ownerID, date string) ([]domain.Task, error) {
	return s.store.ListForDay(ctx, ownerID, date)
}

func (s *TaskService) Today(_ context.Context) string {
	return s.clock.Now().Format(domain.DateLayout)
}
