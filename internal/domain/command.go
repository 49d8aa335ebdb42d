package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// CommandType identifies a parsed command.
type CommandType int

// Command types, in classification order.
const (
	CommandExit CommandType = iota
	CommandList
	CommandMark
	CommandUnmark
	CommandDelete
	CommandDeadline
	CommandTodo
	CommandEvent
)

// String returns the command keyword.
func (c CommandType) String() string {
	switch c {
	case CommandExit:
		return "exit"
	case CommandList:
		return "list"
	case CommandMark:
		return "mark"
	case CommandUnmark:
		return "unmark"
	case CommandDelete:
		return "delete"
	case CommandDeadline:
		return "deadline"
	case CommandTodo:
		return "todo"
	case CommandEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Command keywords and argument markers.
const (
	prefixMark     = "mark "
	prefixUnmark   = "unmark "
	prefixDelete   = "delete "
	prefixDeadline = "deadline "
	prefixTodo     = "todo "
	prefixEvent    = "event "

	markerBy   = "/by "
	markerFrom = "/from "
	markerTo   = "/to "
)

// exitWords are accepted case-insensitively as the farewell command.
var exitWords = []string{"exit", "bye"}

// Command is a validated input line.
// Fields are ordered to minimize memory padding.
type Command struct {
	By          Date        // CommandDeadline
	From        Date        // CommandEvent
	To          Date        // CommandEvent
	Raw         string      // Input line exactly as received
	Description string      // Creation commands
	Type        CommandType // Command type
	Index       int         // 1-based position for mark, unmark and delete
}

// Mutates reports whether applying the command changes the task list.
func (c Command) Mutates() bool {
	switch c.Type {
	case CommandMark, CommandUnmark, CommandDelete, CommandDeadline, CommandTodo, CommandEvent:
		return true
	case CommandExit, CommandList:
		return false
	default:
		return false
	}
}

// Creates reports whether the command creates a task.
func (c Command) Creates() bool {
	return c.Type == CommandTodo || c.Type == CommandDeadline || c.Type == CommandEvent
}

// NewTask builds the task a creation command describes.
// It returns nil for commands that do not create tasks.
func (c Command) NewTask() *Task {
	switch c.Type {
	case CommandTodo:
		return NewTodo(c.Description, c.Raw)
	case CommandDeadline:
		return NewDeadline(c.Description, c.By, c.Raw)
	case CommandEvent:
		return NewEvent(c.Description, c.From, c.To, c.Raw)
	case CommandExit, CommandList, CommandMark, CommandUnmark, CommandDelete:
		return nil
	default:
		return nil
	}
}

// ParseCommand classifies and validates a raw input line.
// Only the exit and list words are case-insensitive; every other
// command is matched by its case-sensitive prefix.
func ParseCommand(line string) (Command, error) {
	for _, w := range exitWords {
		if strings.EqualFold(line, w) {
			return Command{Type: CommandExit, Raw: line}, nil
		}
	}
	if strings.EqualFold(line, "list") {
		return Command{Type: CommandList, Raw: line}, nil
	}

	switch {
	case strings.HasPrefix(line, prefixMark):
		return parseIndexCommand(CommandMark, line, prefixMark)
	case strings.HasPrefix(line, prefixUnmark):
		return parseIndexCommand(CommandUnmark, line, prefixUnmark)
	case strings.HasPrefix(line, prefixDelete):
		return parseIndexCommand(CommandDelete, line, prefixDelete)
	case strings.HasPrefix(line, prefixDeadline):
		return parseDeadline(line)
	case strings.HasPrefix(line, prefixTodo):
		return parseTodo(line)
	case strings.HasPrefix(line, prefixEvent):
		return parseEvent(line)
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
}

// parseIndexCommand reads the argument exactly as typed after the prefix;
// padding such as "mark  2" is not a task number.
func parseIndexCommand(typ CommandType, line, prefix string) (Command, error) {
	arg := line[len(prefix):]
	n, err := strconv.Atoi(arg)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q", ErrInvalidTaskNumber, arg)
	}
	return Command{Type: typ, Raw: line, Index: n}, nil
}

func parseTodo(line string) (Command, error) {
	desc := strings.TrimSpace(line[len(prefixTodo):])
	if desc == "" {
		return Command{}, ErrEmptyDescription
	}
	return Command{Type: CommandTodo, Raw: line, Description: desc}, nil
}

func parseDeadline(line string) (Command, error) {
	head, tail, found := strings.Cut(line, markerBy)
	if !found {
		return Command{}, ErrMissingDeadline
	}
	desc := strings.TrimSpace(strings.TrimPrefix(head, prefixDeadline))
	if desc == "" {
		return Command{}, ErrEmptyDescription
	}
	by, err := ParseDate(strings.TrimSpace(tail))
	if err != nil {
		return Command{}, err
	}
	return Command{Type: CommandDeadline, Raw: line, Description: desc, By: by}, nil
}

func parseEvent(line string) (Command, error) {
	if !strings.Contains(line, markerFrom) || !strings.Contains(line, markerTo) {
		return Command{}, ErrMissingEventRange
	}
	head, rest, _ := strings.Cut(line, markerFrom)
	start, end, found := strings.Cut(rest, markerTo)
	if !found {
		// "/to " only appears before "/from ".
		return Command{}, ErrMissingEventRange
	}
	desc := strings.TrimSpace(strings.TrimPrefix(head, prefixEvent))
	if desc == "" {
		return Command{}, ErrEmptyDescription
	}
	from, err := ParseDate(strings.TrimSpace(start))
	if err != nil {
		return Command{}, err
	}
	to, err := ParseDate(strings.TrimSpace(end))
	if err != nil {
		return Command{}, err
	}
	if to.Before(from) {
		return Command{}, ErrEventEndsBeforeStart
	}
	return Command{Type: CommandEvent, Raw: line, Description: desc, From: from, To: to}, nil
}
