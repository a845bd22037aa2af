package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-day format used for task and session dates.
const DateLayout = "2006-01-02"

type Status string

const (
	StatusPending         Status = "pending"
	StatusInProgress      Status = "in_progress"
	StatusPaused          Status = "paused"
	StatusCompletedOntime Status = "completed_ontime"
)

func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusInProgress, StatusPaused, StatusCompletedOntime:
		return nil
	default:
		return fmt.Errorf("unsupported task status %q", string(s))
	}
}

// ParseStatus normalizes a stored status value and rejects anything
// outside the closed enum.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(raw))
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

type Task struct {
	ID           string
	OwnerID      string
	Name         string
	Subject      string
	EstimatedMin int
	Status       Status
	StartedAt    *time.Time
	CompletedAt  *time.Time
	TaskDate     string
	CreatedAt    time.Time
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(t.OwnerID) == "" {
		return fmt.Errorf("owner id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("task name is required")
	}
	if t.EstimatedMin <= 0 {
		return fmt.Errorf("estimated minutes must be positive")
	}
	if _, err := time.Parse(DateLayout, t.TaskDate); err != nil {
		return fmt.Errorf("task date %q is not a calendar day", t.TaskDate)
	}
	return t.Status.Validate()
}

func (t Task) Completed() bool {
	return t.Status == StatusCompletedOntime
}
