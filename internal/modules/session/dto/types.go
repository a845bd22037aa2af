package dto

type StartInput struct {
	OwnerID string
	TaskID  string
}

type StartOutput struct {
	SessionID            string
	PreviousSessionEnded bool
}

type StopInput struct {
	OwnerID   string
	SessionID string
}

type StopOutput struct {
	DurationMin int
}

type CompleteInput struct {
	OwnerID string
	TaskID  string
}
