package tui

import (
	"fmt"
	"strings"

	"github.com/genesis-cli/genesis/internal/usecase"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.styles.Header.Render(fmt.Sprintf("genesis  %d tasks", m.tasks.Len())))
	b.WriteString("\n\n")

	b.WriteString(m.viewTaskList())

	switch m.mode {
	case ModeNormal:
	case ModeInput:
		b.WriteString("\n")
		b.WriteString(m.styles.InputPrompt.Render("Command"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
		b.WriteString("\n")
	case ModeHelp:
		b.WriteString("\n")
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render(usecase.ErrorMessage(m.err)))
	} else if m.message != "" {
		b.WriteString(m.styles.Message.Render(m.message))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return m.styles.App.Render(b.String())
}

// viewTaskList renders one line per task with the cursor marker.
func (m *Model) viewTaskList() string {
	tasks := m.tasks.Tasks()
	if len(tasks) == 0 {
		return m.styles.Empty.Render(usecase.MsgEmptyList) + "\n"
	}

	var b strings.Builder
	for i, task := range tasks {
		line := fmt.Sprintf("%d. %s", i+1, task)
		style := m.styles.Task.Foreground(KindColor(task.Kind))
		if task.Done {
			style = m.styles.TaskDone
		}
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
			style = m.styles.TaskSelected
		}
		b.WriteString(cursor)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewConfirmDialog() string {
	task := m.SelectedTask()
	if task == nil {
		return ""
	}
	return m.styles.Dialog.Render(fmt.Sprintf("Delete %q? (y/n)", task.Description))
}
