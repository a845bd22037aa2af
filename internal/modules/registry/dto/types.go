package dto

import "time"

type AddTaskInput struct {
	OwnerID      string
	Name         string
	Subject      string
	EstimatedMin int
}

type TaskOutput struct {
	ID           string     `json:"id"`
	OwnerID      string     `json:"user_id"`
	Name         string     `json:"task_name"`
	Subject      string     `json:"subject"`
	EstimatedMin int        `json:"estimated_minutes"`
	Status       string     `json:"status"`
	StartedAt    *time.Time `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"`
	TaskDate     string     `json:"task_date"`
	CreatedAt    time.Time  `json:"created_at"`
}
