package tui

import (
	"log/slog"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/genesis-cli/genesis/internal/app"
	"github.com/genesis-cli/genesis/internal/domain"
	"github.com/genesis-cli/genesis/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, inputs ...string) (*Model, *testutil.MockTaskRepository) {
	t.Helper()

	repo := testutil.NewMockTaskRepository()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	c := app.NewWithDeps(app.Config{}, repo, logger)
	for _, in := range inputs {
		cmd, err := domain.ParseCommand(in)
		require.NoError(t, err)
		c.Tasks.Add(cmd.NewTask())
	}

	m := New(c)
	m.width = 80
	m.height = 24
	return m, repo
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m *Model, msg tea.Msg) (*Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	result, ok := updated.(*Model)
	require.True(t, ok, "Update should return *Model")
	return result, cmd
}

func TestUpdate_WindowSize(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestUpdate_Navigation(t *testing.T) {
	m, _ := newTestModel(t, "todo a", "todo b", "todo c")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, keyRunes("j"))
	assert.Equal(t, 2, m.cursor)

	// Stops at the last task
	m, _ = update(t, m, keyRunes("j"))
	assert.Equal(t, 2, m.cursor)

	m, _ = update(t, m, keyRunes("k"))
	assert.Equal(t, 1, m.cursor)

	m, _ = update(t, m, keyRunes("g"))
	assert.Equal(t, 0, m.cursor)

	m, _ = update(t, m, keyRunes("G"))
	assert.Equal(t, 2, m.cursor)
}

func TestUpdate_ToggleMarksAndUnmarks(t *testing.T) {
	m, repo := newTestModel(t, "todo read book")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.NoError(t, m.err)
	assert.True(t, m.SelectedTask().Done)
	assert.Contains(t, m.message, "marked this task as done")
	assert.Equal(t, 1, repo.SaveCalls)
	assert.True(t, repo.Stored[0].Done)

	m, _ = update(t, m, keyRunes("x"))
	assert.False(t, m.SelectedTask().Done)
	assert.Contains(t, m.message, "not done yet")
	assert.Equal(t, 2, repo.SaveCalls)
}

func TestUpdate_DeleteNeedsConfirmation(t *testing.T) {
	m, repo := newTestModel(t, "todo a", "todo b")
	m.cursor = 1

	m, _ = update(t, m, keyRunes("d"))
	assert.Equal(t, ModeConfirm, m.mode)

	// Cancel keeps the task
	m, _ = update(t, m, keyRunes("n"))
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, 2, m.tasks.Len())

	m, _ = update(t, m, keyRunes("d"))
	m, _ = update(t, m, keyRunes("y"))
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, 1, m.tasks.Len())
	assert.Equal(t, 0, m.cursor, "cursor moves back onto the remaining task")
	assert.Equal(t, []string{"todo a"}, repo.Inputs())
}

func TestUpdate_DeleteOnEmptyList(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, keyRunes("d"))

	assert.Equal(t, ModeNormal, m.mode)
}

func TestUpdate_AddCommandLine(t *testing.T) {
	m, repo := newTestModel(t, "todo a")

	m, _ = update(t, m, keyRunes("a"))
	require.Equal(t, ModeInput, m.mode)

	m, _ = update(t, m, keyRunes("deadline submit report /by 2024-12-01"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ModeNormal, m.mode)
	require.NoError(t, m.err)
	assert.Equal(t, 2, m.tasks.Len())
	assert.Equal(t, 1, m.cursor, "cursor follows the new task")
	assert.Contains(t, m.message, "[D][ ] submit report (by: Dec 1 2024)")
	assert.Equal(t, []string{"todo a", "deadline submit report /by 2024-12-01"}, repo.Inputs())
}

func TestUpdate_AddRejectedCommand(t *testing.T) {
	m, repo := newTestModel(t)

	m, _ = update(t, m, keyRunes("a"))
	m, _ = update(t, m, keyRunes("todo   "))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.ErrorIs(t, m.err, domain.ErrEmptyDescription)
	assert.Equal(t, 0, m.tasks.Len())
	assert.Equal(t, 0, repo.SaveCalls)
	assert.Contains(t, m.View(), "You need a task description!")
}

func TestUpdate_AddEscapeCancels(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, keyRunes("a"))
	m, _ = update(t, m, keyRunes("todo x"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ModeNormal, m.mode)
	assert.Empty(t, m.input.Value())
	assert.Equal(t, 0, m.tasks.Len())
}

func TestUpdate_TypedExitQuits(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, keyRunes("a"))
	m, _ = update(t, m, keyRunes("bye"))
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := update(t, m, keyRunes("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_HelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, keyRunes("?"))
	assert.Equal(t, ModeHelp, m.mode)

	m, _ = update(t, m, keyRunes("?"))
	assert.Equal(t, ModeNormal, m.mode)
}
