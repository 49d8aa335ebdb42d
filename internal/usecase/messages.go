package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/genesis-cli/genesis/internal/domain"
)

// User-facing texts.
const (
	MsgGreeting     = "Hello! I'm Genesis!\nWhat can I do for you?"
	MsgFarewell     = "Bye. Hope to see you again soon!"
	MsgEmptyList    = "No tasks in the list."
	MsgDataNotFound = "Error. Data file does not exist!"
)

// Messages returns the confirmation lines for an executed command.
func (o *ExecuteCommandOutput) Messages() []string {
	switch o.Action {
	case ActionExit:
		return []string{MsgFarewell}
	case ActionList:
		if len(o.Lines) == 0 {
			return []string{MsgEmptyList}
		}
		return o.Lines
	case ActionAdd:
		return []string{"Got it. I've added this task:", o.Task.String(), countLine(o.Count)}
	case ActionMark:
		return []string{"Nice! I've marked this task as done:", o.Task.Description}
	case ActionUnmark:
		return []string{"Ok. I've marked this task as not done yet:", o.Task.Description}
	case ActionDelete:
		return []string{"Noted. I have removed the following task:", o.Task.String(), countLine(o.Count)}
	}
	return nil
}

func countLine(n int) string {
	if n == 1 {
		return "Now you have 1 task in the list."
	}
	return fmt.Sprintf("Now you have %d tasks in the list.", n)
}

// ErrorMessage returns the single line shown to the user for a rejected command.
func ErrorMessage(err error) string {
	var dateErr *domain.DateError
	switch {
	case errors.Is(err, domain.ErrUnknownCommand):
		return "Sorry, I am not sure what task this is! Please enter a valid task."
	case errors.Is(err, domain.ErrMissingDeadline):
		return "You need a deadline to add this task!"
	case errors.Is(err, domain.ErrMissingEventRange):
		return "You need a starting and ending date to add this task!"
	case errors.Is(err, domain.ErrEmptyDescription):
		return "You need a task description!"
	case errors.Is(err, domain.ErrInvalidTaskNumber):
		return "Invalid task number!"
	case errors.Is(err, domain.ErrTaskNotFound):
		return "No such task exists!"
	case errors.As(err, &dateErr):
		return fmt.Sprintf("Invalid date %q! Please use YYYY-MM-DD.", dateErr.Text)
	case errors.Is(err, domain.ErrEventEndsBeforeStart):
		return "An event cannot end before it starts!"
	case errors.Is(err, domain.ErrDataFileNotFound):
		return MsgDataNotFound
	case errors.Is(err, domain.ErrNotReplayable):
		return "This command cannot be stored as a task."
	case errors.Is(err, domain.ErrLineTooLong):
		return "That line is too long! Please keep commands under 1 MiB."
	case errors.Is(err, domain.ErrSaveTasks):
		return "Could not save tasks: " + strings.TrimPrefix(err.Error(), domain.ErrSaveTasks.Error()+": ")
	}
	return "Error. " + err.Error()
}

// LoadErrorMessage returns the line shown when the data file cannot be read.
func LoadErrorMessage(err error) string {
	if errors.Is(err, domain.ErrDataFileNotFound) {
		return MsgDataNotFound
	}
	return "Error loading tasks from file: " + err.Error()
}

// SkippedMessage describes a data file line that could not be replayed.
func SkippedMessage(s SkippedLine) string {
	return fmt.Sprintf("Skipped line %d (%s): %s", s.Line, s.Input, ErrorMessage(s.Err))
}
