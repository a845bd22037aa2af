package dto

import "time"

type ActiveStudierOutput struct {
	OwnerID   string     `json:"id"`
	Name      string     `json:"name"`
	TaskName  string     `json:"task_name"`
	Subject   string     `json:"subject"`
	StartedAt *time.Time `json:"started_at"`
}
