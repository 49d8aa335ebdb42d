package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/genesis-cli/genesis/internal/app"
	"github.com/genesis-cli/genesis/internal/domain"
	"github.com/genesis-cli/genesis/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
// Every action is issued as a command line through ExecuteCommand, so the
// TUI saves exactly like the interactive prompt does.
type Model struct {
	// Dependencies (pointers first for alignment)
	tasks   *domain.TaskList
	execute *usecase.ExecuteCommand
	err     error

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	input  textinput.Model

	message string // Confirmation of the last command

	// Numeric state (smaller types last)
	mode   Mode
	cursor int
	width  int
	height int
}

// New creates a new TUI Model over the container's task list.
// The task list is expected to be loaded already.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "todo read book"
	ti.Prompt = "> "
	ti.CharLimit = 500

	return &Model{
		tasks:   c.Tasks,
		execute: c.ExecuteCommandUseCase(),
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
		help:    help.New(),
		input:   ti,
		mode:    ModeNormal,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return nil
}

// SelectedTask returns the task under the cursor, or nil for an empty list.
func (m *Model) SelectedTask() *domain.Task {
	task, err := m.tasks.Get(m.cursor + 1)
	if err != nil {
		return nil
	}
	return task
}

// run executes one command line and records its outcome.
func (m *Model) run(line string) {
	out, err := m.execute.Execute(context.Background(), usecase.ExecuteCommandInput{Line: line})
	if err != nil {
		m.err = err
		m.message = ""
		return
	}
	m.err = nil
	m.message = strings.Join(out.Messages(), " ")
	if out.Action == usecase.ActionAdd {
		m.cursor = out.Count - 1
	}
	m.clampCursor()
}

// toggleSelected marks or unmarks the task under the cursor.
func (m *Model) toggleSelected() {
	task := m.SelectedTask()
	if task == nil {
		return
	}
	verb := "mark"
	if task.Done {
		verb = "unmark"
	}
	m.run(verb + " " + strconv.Itoa(m.cursor+1))
}

// deleteSelected deletes the task under the cursor.
func (m *Model) deleteSelected() {
	if m.SelectedTask() == nil {
		return
	}
	m.run("delete " + strconv.Itoa(m.cursor+1))
}

func (m *Model) clampCursor() {
	if n := m.tasks.Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
