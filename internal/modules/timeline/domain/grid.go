package domain

import "time"

const (
	HoursPerDay    = 24
	MinutesPerHour = 60
)

// Entry is one session record on a day's timeline, joined with its task.
type Entry struct {
	SessionID   string
	TaskID      string
	TaskName    string
	Subject     string
	StartedAt   time.Time
	EndedAt     *time.Time
	DurationMin *int
}

// EffectiveMinutes is the duration used for both rendering and the day
// summary: the stored value for a closed session (floored to one visible
// minute when zero or missing), elapsed wall-clock minutes for an open one.
func (e Entry) EffectiveMinutes(now time.Time) int {
	if e.EndedAt != nil {
		if e.DurationMin != nil && *e.DurationMin > 0 {
			return *e.DurationMin
		}
		return 1
	}
	elapsed := now.Sub(e.StartedAt)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / time.Minute)
}

// Block is one proportional slice of a session inside a single hour row.
// Top and Height are in minutes, one unit per minute of the hour.
type Block struct {
	Hour        int
	Top         int
	Height      int
	Subject     string
	TaskName    string
	DurationMin int
	Labeled     bool
}

// Grid is the 24-row hour grid, one slice of blocks per hour of day.
type Grid [HoursPerDay][]Block

// BuildGrid splits each entry across hour boundaries. Only the first
// block of an entry carries the task label; continuation blocks mark
// visual continuity. Rendering never crosses into the next day: whatever
// remains past hour 23 is dropped.
func BuildGrid(entries []Entry, now time.Time) Grid {
	grid := Grid{}
	for _, e := range entries {
		remaining := e.EffectiveMinutes(now)
		hour := e.StartedAt.Hour()
		offset := e.StartedAt.Minute()
		total := remaining
		first := true

		for remaining > 0 && hour < HoursPerDay {
			consumed := remaining
			if available := MinutesPerHour - offset; consumed > available {
				consumed = available
			}
			block := Block{
				Hour:    hour,
				Top:     offset,
				Height:  consumed,
				Subject: e.Subject,
			}
			if first {
				block.TaskName = e.TaskName
				block.DurationMin = total
				block.Labeled = true
			}
			grid[hour] = append(grid[hour], block)

			remaining -= consumed
			hour++
			offset = 0
			first = false
		}
	}
	return grid
}

type Summary struct {
	TotalMinutes int
	TaskCount    int
}

// Summarize recomputes day totals from the effective-duration rule,
// independently of the block-splitting pass, so summary and grid agree no
// matter where each is computed.
func Summarize(entries []Entry, now time.Time) Summary {
	total := 0
	tasks := map[string]struct{}{}
	for _, e := range entries {
		total += e.EffectiveMinutes(now)
		tasks[e.TaskID] = struct{}{}
	}
	return Summary{TotalMinutes: total, TaskCount: len(tasks)}
}
