package dto

import "time"

type SessionRecord struct {
	SessionID   string     `json:"id"`
	TaskID      string     `json:"task_id"`
	TaskName    string     `json:"task_name"`
	Subject     string     `json:"subject"`
	StartedAt   time.Time  `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at"`
	DurationMin *int       `json:"duration_minutes"`
}

type BlockOutput struct {
	Top         int    `json:"top"`
	Height      int    `json:"height"`
	Subject     string `json:"subject"`
	TaskName    string `json:"task_name,omitempty"`
	DurationMin int    `json:"duration_minutes,omitempty"`
	Labeled     bool   `json:"labeled"`
}

type SummaryOutput struct {
	TotalMinutes int `json:"total_minutes"`
	TaskCount    int `json:"task_count"`
}

type DayOutput struct {
	Sessions []SessionRecord `json:"sessions"`
	Grid     [][]BlockOutput `json:"grid"`
	Summary  SummaryOutput   `json:"summary"`
}
