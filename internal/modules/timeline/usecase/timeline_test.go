package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"studytrack/internal/modules/timeline/domain"
	"studytrack/internal/modules/timeline/usecase"
	apperrors "studytrack/internal/platform/errors"
)

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time { return f.now }

type fakeReader struct {
	entries []domain.Entry
	owner   string
	date    string
	err     error
}

func (f *fakeReader) ListForDay(_ context.Context, ownerID, date string) ([]domain.Entry, error) {
	f.owner = ownerID
	f.date = date
	return f.entries, f.err
}

func TestGetDayRendersGridAndSummary(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 14, 10, 15, 0, 0, time.UTC)
	end := start.Add(50 * time.Minute)
	fifty := 50
	reader := &fakeReader{entries: []domain.Entry{{
		SessionID:   "sess-1",
		TaskID:      "task-1",
		TaskName:    "Integrals",
		Subject:     "Maths",
		StartedAt:   start,
		EndedAt:     &end,
		DurationMin: &fifty,
	}}}
	uc := usecase.NewInteractor(fixedClock{now: end.Add(time.Hour)}, reader)

	day, err := uc.GetDay(context.Background(), "owner-1", "2026-03-14")
	if err != nil {
		t.Fatalf("get day: %v", err)
	}
	if reader.owner != "owner-1" || reader.date != "2026-03-14" {
		t.Fatalf("reader queried with %s/%s", reader.owner, reader.date)
	}
	if len(day.Sessions) != 1 || day.Sessions[0].TaskName != "Integrals" {
		t.Fatalf("unexpected session records: %+v", day.Sessions)
	}
	if len(day.Grid) != domain.HoursPerDay {
		t.Fatalf("grid must always have 24 rows, got %d", len(day.Grid))
	}
	if len(day.Grid[10]) != 1 || len(day.Grid[11]) != 1 {
		t.Fatalf("expected split across hours 10 and 11: %+v", day.Grid)
	}
	if day.Summary.TotalMinutes != 50 || day.Summary.TaskCount != 1 {
		t.Fatalf("unexpected summary: %+v", day.Summary)
	}
}

func TestGetDayRejectsBadInput(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(fixedClock{now: time.Now()}, &fakeReader{})

	if _, err := uc.GetDay(context.Background(), "", "2026-03-14"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("empty owner should be invalid input, got %v", err)
	}
	if _, err := uc.GetDay(context.Background(), "owner-1", "14-03-2026"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("malformed date should be invalid input, got %v", err)
	}
}
