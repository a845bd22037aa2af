package usecase

import (
	"context"

	sessiondto "studytrack/internal/modules/session/dto"
	sessionin "studytrack/internal/modules/session/port/in"
	"studytrack/internal/modules/session/service"
	apperrors "studytrack/internal/platform/errors"
	"studytrack/internal/platform/tx"
)

// Interactor runs each coordinator operation as one all-or-nothing unit.
// A partial write would break the one-open-session invariant or leave the
// live feed pointing at a stale task.
type Interactor struct {
	svc *service.SessionService
	txm tx.Manager
}

func NewInteractor(svc *service.SessionService, txm tx.Manager) sessionin.Usecase {
	return &Interactor{svc: svc, txm: txm}
}

func (i *Interactor) Start(ctx context.Context, input sessiondto.StartInput) (sessiondto.StartOutput, error) {
	if input.OwnerID == "" || input.TaskID == "" {
		return sessiondto.StartOutput{}, apperrors.ErrInvalidInput
	}
	out := sessiondto.StartOutput{}
	err := i.txm.Within(ctx, func(ctx context.Context) error {
		session, previousEnded, err := i.svc.Start(ctx, input.OwnerID, input.TaskID)
		if err != nil {
			return err
		}
		out = sessiondto.StartOutput{SessionID: session.ID, PreviousSessionEnded: previousEnded}
		return nil
	})
	if err != nil {
		return sessiondto.StartOutput{}, err
	}
	return out, nil
}

func (i *Interactor) Stop(ctx context.Context, input sessiondto.StopInput) (sessiondto.StopOutput, error) {
	if input.OwnerID == "" || input.SessionID == "" {
		return sessiondto.StopOutput{}, apperrors.ErrInvalidInput
	}
	out := sessiondto.StopOutput{}
	err := i.txm.Within(ctx, func(ctx context.Context) error {
		duration, err := i.svc.Stop(ctx, input.OwnerID, input.SessionID)
		if err != nil {
			return err
		}
		out = sessiondto.StopOutput{DurationMin: duration}
		return nil
	})
	if err != nil {
		return sessiondto.StopOutput{}, err
	}
	return out, nil
}

func (i *Interactor) Complete(ctx context.Context, input sessiondto.CompleteInput) error {
	if input.OwnerID == "" || input.TaskID == "" {
		return apperrors.ErrInvalidInput
	}
	return i.txm.Within(ctx, func(ctx context.Context) error {
		return i.svc.Complete(ctx, input.OwnerID, input.TaskID)
	})
}
