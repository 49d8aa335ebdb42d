package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/genesis-cli/genesis/internal/app"
	"github.com/genesis-cli/genesis/internal/tui"
	"github.com/spf13/cobra"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// newTUICommand creates the tui command for launching the interactive TUI.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long: `Launch a full-screen browser for the task list.

Keys: up/down to move, space to mark or unmark, d to delete, a to type a
command line, ? for help, q to quit. Changes are saved immediately.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadTasks(cmd.Context(), c, newPresenter(cmd.ErrOrStderr(), c.AppConfig.UI.NoColor)); err != nil {
				return err
			}
			return launchTUIFunc(c)
		},
	}
}

// launchTUI runs the TUI on the alternate screen until the user quits.
func launchTUI(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
