package domain

import "errors"

// Domain errors.
var (
	ErrUnknownCommand       = errors.New("unknown command")
	ErrMissingDeadline      = errors.New("missing /by date")
	ErrMissingEventRange    = errors.New("missing /from or /to date")
	ErrEmptyDescription     = errors.New("description cannot be empty")
	ErrInvalidTaskNumber    = errors.New("invalid task number")
	ErrTaskNotFound         = errors.New("task not found")
	ErrInvalidDate          = errors.New("invalid date")
	ErrEventEndsBeforeStart = errors.New("event ends before it starts")
	ErrDataFileNotFound     = errors.New("data file does not exist")
	ErrNotReplayable        = errors.New("command cannot be replayed from the data file")
	ErrSaveTasks            = errors.New("could not save tasks")
	ErrConfigExists         = errors.New("config file already exists")
	ErrConfigNil            = errors.New("config is nil")
	ErrNoLogFile            = errors.New("no log file")
	ErrLineTooLong          = errors.New("input line too long")
)
