// Package domain contains core business entities and interfaces.
package domain

import "strings"

// Kind identifies the variant of a task.
type Kind int

// Task kinds.
const (
	KindTodo Kind = iota
	KindDeadline
	KindEvent
)

// Tag returns the single-letter tag shown in the rendered form.
func (k Kind) Tag() string {
	switch k {
	case KindTodo:
		return "T"
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	default:
		return "?"
	}
}

// String returns the command keyword for the kind.
func (k Kind) String() string {
	switch k {
	case KindTodo:
		return "todo"
	case KindDeadline:
		return "deadline"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Task is a unit of work tracked by genesis.
// Kind selects which of the date fields are meaningful:
// By for deadlines, From and To for events.
// Fields are ordered to minimize memory padding.
type Task struct {
	By          Date   // Due date (KindDeadline)
	From        Date   // Start date (KindEvent)
	To          Date   // End date (KindEvent)
	Description string // Description (required)
	Input       string // Raw command line that created the task
	Kind        Kind   // Variant tag
	Done        bool   // Completion flag
}

// NewTodo creates a todo task.
func NewTodo(description, input string) *Task {
	return &Task{Kind: KindTodo, Description: description, Input: input}
}

// NewDeadline creates a task due on the given date.
func NewDeadline(description string, by Date, input string) *Task {
	return &Task{Kind: KindDeadline, Description: description, By: by, Input: input}
}

// NewEvent creates a task spanning from start to end.
func NewEvent(description string, from, to Date, input string) *Task {
	return &Task{Kind: KindEvent, Description: description, From: from, To: to, Input: input}
}

// Mark sets the completion flag.
func (t *Task) Mark() {
	t.Done = true
}

// Unmark clears the completion flag.
func (t *Task) Unmark() {
	t.Done = false
}

// String returns the rendered form, e.g. "[D][X] submit report (by: Dec 1 2024)".
func (t *Task) String() string {
	var b strings.Builder
	b.WriteString("[" + t.Kind.Tag() + "]")
	if t.Done {
		b.WriteString("[X] ")
	} else {
		b.WriteString("[ ] ")
	}
	b.WriteString(t.Description)

	switch t.Kind {
	case KindDeadline:
		b.WriteString(" (by: " + t.By.Display() + ")")
	case KindEvent:
		b.WriteString(" (from: " + t.From.Display() + " to: " + t.To.Display() + ")")
	case KindTodo:
	}
	return b.String()
}
