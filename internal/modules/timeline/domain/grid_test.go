package domain_test

import (
	"testing"
	"time"

	"studytrack/internal/modules/timeline/domain"
)

func minutes(m int) *int { return &m }

func closedEntry(taskID string, start time.Time, durationMin int) domain.Entry {
	end := start.Add(time.Duration(durationMin) * time.Minute)
	return domain.Entry{
		SessionID:   "sess-" + taskID,
		TaskID:      taskID,
		TaskName:    "Task " + taskID,
		Subject:     "Maths",
		StartedAt:   start,
		EndedAt:     &end,
		DurationMin: minutes(durationMin),
	}
}

func TestGridSplitsSessionAcrossHourBoundary(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 14, 10, 15, 0, 0, time.UTC)
	grid := domain.BuildGrid([]domain.Entry{closedEntry("t1", start, 50)}, start.Add(2*time.Hour))

	if len(grid[10]) != 1 || len(grid[11]) != 1 {
		t.Fatalf("expected blocks in hours 10 and 11, got %d and %d", len(grid[10]), len(grid[11]))
	}
	first := grid[10][0]
	if first.Top != 15 || first.Height != 45 {
		t.Fatalf("first block should be top=15 height=45, got top=%d height=%d", first.Top, first.Height)
	}
	if !first.Labeled || first.TaskName != "Task t1" || first.DurationMin != 50 {
		t.Fatalf("first block should carry the full label, got %+v", first)
	}
	second := grid[11][0]
	if second.Top != 0 || second.Height != 5 {
		t.Fatalf("continuation block should be top=0 height=5, got top=%d height=%d", second.Top, second.Height)
	}
	if second.Labeled || second.TaskName != "" {
		t.Fatalf("continuation block must be an unlabeled placeholder, got %+v", second)
	}
	if second.Subject != "Maths" {
		t.Fatalf("continuation block keeps the subject for color coding, got %q", second.Subject)
	}
}

func TestGridDropsMinutesPastMidnight(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 14, 23, 45, 0, 0, time.UTC)
	grid := domain.BuildGrid([]domain.Entry{closedEntry("t1", start, 30)}, start.Add(time.Hour))

	if len(grid[23]) != 1 {
		t.Fatalf("expected one block in hour 23, got %d", len(grid[23]))
	}
	block := grid[23][0]
	if block.Top != 45 || block.Height != 15 {
		t.Fatalf("expected top=45 height=15, got top=%d height=%d", block.Top, block.Height)
	}
	rendered := 0
	for _, blocks := range grid {
		for _, b := range blocks {
			rendered += b.Height
		}
	}
	if rendered != 15 {
		t.Fatalf("only 15 of the 30 minutes fit in the day grid, got %d", rendered)
	}
}

func TestGridFitsSessionInsideSingleHour(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)
	grid := domain.BuildGrid([]domain.Entry{closedEntry("t1", start, 60)}, start.Add(2*time.Hour))

	if len(grid[14]) != 1 {
		t.Fatalf("expected exactly one block in hour 14, got %d", len(grid[14]))
	}
	if b := grid[14][0]; b.Top != 0 || b.Height != 60 {
		t.Fatalf("expected top=0 height=60, got top=%d height=%d", b.Top, b.Height)
	}
	if len(grid[15]) != 0 {
		t.Fatalf("a 60-minute on-the-hour session must not spill into hour 15")
	}
}

func TestEffectiveMinutesGrowsWhileSessionIsOpen(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	open := domain.Entry{SessionID: "s", TaskID: "t", StartedAt: start}

	previous := -1
	for _, elapsed := range []time.Duration{0, 30 * time.Second, 5 * time.Minute, 90 * time.Minute} {
		got := open.EffectiveMinutes(start.Add(elapsed))
		want := int(elapsed / time.Minute)
		if got != want {
			t.Fatalf("at +%s expected %d effective minutes, got %d", elapsed, want, got)
		}
		if got < previous {
			t.Fatalf("effective minutes must grow monotonically, %d after %d", got, previous)
		}
		previous = got
	}
}

func TestEffectiveMinutesFloorsClosedSessionsToOneMinute(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	end := start.Add(10 * time.Second)
	now := start.Add(time.Hour)

	zero := 0
	for _, entry := range []domain.Entry{
		{SessionID: "a", TaskID: "t", StartedAt: start, EndedAt: &end},
		{SessionID: "b", TaskID: "t", StartedAt: start, EndedAt: &end, DurationMin: &zero},
	} {
		if got := entry.EffectiveMinutes(now); got != 1 {
			t.Fatalf("closed session with missing/zero duration must render one visible minute, got %d", got)
		}
	}
}

func TestSummaryMatchesEffectiveDurationsRegardlessOfBlockCount(t *testing.T) {
	t.Parallel()
	base := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	now := base.Add(23*time.Hour + 30*time.Minute)
	entries := []domain.Entry{
		closedEntry("t1", base.Add(10*time.Hour+15*time.Minute), 50),
		closedEntry("t2", base.Add(21*time.Hour), 150),
		{SessionID: "open", TaskID: "t1", TaskName: "Task t1", StartedAt: now.Add(-25 * time.Minute)},
	}

	summary := domain.Summarize(entries, now)
	if summary.TotalMinutes != 50+150+25 {
		t.Fatalf("expected 225 total minutes, got %d", summary.TotalMinutes)
	}
	if summary.TaskCount != 2 {
		t.Fatalf("distinct task count should be 2, got %d", summary.TaskCount)
	}

	grid := domain.BuildGrid(entries, now)
	blocks := 0
	for _, hour := range grid {
		blocks += len(hour)
	}
	if blocks <= len(entries) {
		t.Fatalf("expected hour-boundary splits to produce more blocks than entries, got %d", blocks)
	}
}
