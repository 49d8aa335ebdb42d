package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/genesis-cli/genesis/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary  lipgloss.Color
	Muted    lipgloss.Color
	Error    lipgloss.Color
	Success  lipgloss.Color
	Warning  lipgloss.Color
	Selected lipgloss.Color

	// Kind colors
	Todo     lipgloss.Color
	Deadline lipgloss.Color
	Event    lipgloss.Color
}{
	Primary:  lipgloss.Color("#6C5CE7"), // Purple
	Muted:    lipgloss.Color("#636E72"), // Gray
	Error:    lipgloss.Color("#D63031"), // Red
	Success:  lipgloss.Color("#00B894"), // Green
	Warning:  lipgloss.Color("#FDCB6E"), // Yellow
	Selected: lipgloss.Color("#FFEAA7"), // Light yellow

	Todo:     lipgloss.Color("#74B9FF"), // Light blue
	Deadline: lipgloss.Color("#FDCB6E"), // Yellow
	Event:    lipgloss.Color("#A29BFE"), // Lavender
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Header       lipgloss.Style
	Task         lipgloss.Style
	TaskSelected lipgloss.Style
	TaskDone     lipgloss.Style
	Cursor       lipgloss.Style
	Empty        lipgloss.Style
	Message      lipgloss.Style
	ErrorMsg     lipgloss.Style
	InputPrompt  lipgloss.Style
	Dialog       lipgloss.Style
	Footer       lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),
		Task:         lipgloss.NewStyle(),
		TaskSelected: lipgloss.NewStyle().Foreground(Colors.Selected).Bold(true),
		TaskDone:     lipgloss.NewStyle().Foreground(Colors.Muted),
		Cursor:       lipgloss.NewStyle().Foreground(Colors.Primary),
		Empty:        lipgloss.NewStyle().Foreground(Colors.Muted).Italic(true),
		Message:      lipgloss.NewStyle().Foreground(Colors.Success),
		ErrorMsg:     lipgloss.NewStyle().Foreground(Colors.Error),
		InputPrompt:  lipgloss.NewStyle().Foreground(Colors.Primary).Bold(true),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Warning).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().Foreground(Colors.Muted),
	}
}

// KindColor returns the color for a task kind.
func KindColor(k domain.Kind) lipgloss.Color {
	switch k {
	case domain.KindTodo:
		return Colors.Todo
	case domain.KindDeadline:
		return Colors.Deadline
	case domain.KindEvent:
		return Colors.Event
	}
	return Colors.Muted
}
