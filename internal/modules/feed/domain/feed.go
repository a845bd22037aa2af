package domain

import "time"

// ActiveStudier is one row of the "who is studying now" roster.
type ActiveStudier struct {
	OwnerID   string
	Name      string
	TaskName  string
	Subject   string
	StartedAt *time.Time
}
