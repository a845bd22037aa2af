package service

import (
	"context"
	"errors"
	"fmt"

	"studytrack/internal/modules/session/domain"
	sessionout "studytrack/internal/modules/session/port/out"
	"studytrack/internal/platform/clock"
	apperrors "studytrack/internal/platform/errors"
	"studytrack/internal/platform/id"
)

// SessionService holds the session state machine. Every public method is
// expected to run inside one transaction; the usecase owns that boundary.
type SessionService struct {
	clock  clock.Clock
	idGen  id.Generator
	ledger sessionout.SessionLedger
	tasks  sessionout.TaskStateStore
	active sessionout.ActiveSessionStore
}

func NewSessionService(clock clock.Clock, idGen id.Generator, ledger sessionout.SessionLedger, tasks sessionout.TaskStateStore, active sessionout.ActiveSessionStore) *SessionService {
	return &SessionService{clock: clock, idGen: idGen, ledger: ledger, tasks: tasks, active: active}
}

// closeOpen closes the owner's open ledger entry if one exists and reports
// whether anything was closed.
func (s *SessionService) closeOpen(ctx context.Context, ownerID string) (bool, error) {
	open, err := s.ledger.FindOpen(ctx, ownerID)
	if errors.Is(err, apperrors.ErrNoActiveSession) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	now := s.clock.Now()
	if err := s.ledger.Close(ctx, open.ID, now, domain.RoundedMinutes(open.StartedAt, now)); err != nil {
		return false, err
	}
	return true, nil
}

// Start opens a session for (ownerID, taskID), auto-closing any session
// the owner already has running. The returned bool reports whether a
// previous session was closed.
func (s *SessionService) Start(ctx context.Context, ownerID, taskID string) (domain.Session, bool, error) {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return domain.Session{}, false, err
	}
	if task.OwnerID != ownerID {
		return domain.Session{}, false, apperrors.ErrNotFound
	}
	if task.Completed() {
		return domain.Session{}, false, apperrors.ErrTaskCompleted
	}

	previousEnded, err := s.closeOpen(ctx, ownerID)
	if err != nil {
		return domain.Session{}, false, err
	}
	// Consistency pass: a stale in_progress task may differ from the
	// closed session's task.
	if err := s.tasks.PauseInProgress(ctx, ownerID); err != nil {
		return domain.Session{}, false, err
	}

	now := s.clock.Now()
	if err := s.tasks.MarkInProgress(ctx, taskID, now); err != nil {
		return domain.Session{}, false, err
	}
	session := domain.NewOpen(s.idGen.New(), ownerID, taskID, now)
	if err := s.ledger.InsertOpen(ctx, session); err != nil {
		return domain.Session{}, false, fmt.Errorf("open session: %w", err)
	}
	if err := s.active.Upsert(ctx, domain.ActiveMarker{OwnerID: ownerID, TaskID: taskID, LastSeen: now}); err != nil {
		return domain.Session{}, false, err
	}
	return session, previousEnded, nil
}

// Stop closes the identified session, pauses its task and removes the
// owner's marker. Sessions belonging to another owner are reported as not
// found. Stopping an already-closed session repeats the task/marker
// cleanup but leaves the ledger entry untouched.
func (s *SessionService) Stop(ctx context.Context, ownerID, sessionID string) (int, error) {
	session, err := s.ledger.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	if session.OwnerID != ownerID {
		return 0, apperrors.ErrNotFound
	}

	duration := 0
	if session.Open() {
		now := s.clock.Now()
		duration = domain.RoundedMinutes(session.StartedAt, now)
		if err := s.ledger.Close(ctx, session.ID, now, duration); err != nil {
			return 0, err
		}
	} else if session.DurationMin != nil {
		duration = *session.DurationMin
	}
	if err := s.tasks.MarkPaused(ctx, session.TaskID); err != nil {
		return 0, err
	}
	if err := s.active.Delete(ctx, ownerID); err != nil {
		return 0, err
	}
	return duration, nil
}

// Complete closes the owner's open session if any, marks the task as
// completed on time and removes the marker. Safe to call twice.
func (s *SessionService) Complete(ctx context.Context, ownerID, taskID string) error {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return err
	}
	if task.OwnerID != ownerID {
		return apperrors.ErrNotFound
	}
	if _, err := s.closeOpen(ctx, ownerID); err != nil {
		return err
	}
	if err := s.tasks.MarkCompleted(ctx, taskID, s.clock.Now()); err != nil {
		return err
	}
	return s.active.Delete(ctx, ownerID)
}
