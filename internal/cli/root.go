// Package cli provides the command-line interface for genesis.
package cli

import (
	"fmt"

	"github.com/genesis-cli/genesis/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
)

// NewRootCommand creates the root command for genesis.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var dataPath string
	var noColor bool

	root := &cobra.Command{
		Use:   "genesis",
		Short: "Line-oriented task tracker",
		Long: `genesis keeps a list of todos, deadlines and events in a plain text file.

Run without arguments to start the interactive prompt and type one command
per line:

  todo read book
  deadline submit report /by 2024-12-01
  event conference /from 2024-06-01 /to 2024-06-03
  list
  mark 1
  unmark 1
  delete 2
  exit

Every change is written to the data file immediately.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			if dataPath != "" {
				c.UseDataPath(c.Config.WorkDir, dataPath)
			}
			if noColor {
				c.AppConfig.UI.NoColor = true
			}

			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, c)
		},
	}

	root.PersistentFlags().StringVar(&dataPath, "data", "", "Data file path (default: data/tasks.txt)")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled output")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
	)

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	doCmd := newDoCommand(c)
	doCmd.GroupID = groupTask

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupTask

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	logsCmd := newLogsCommand(c)
	logsCmd.GroupID = groupSetup

	root.AddCommand(
		configCmd,
		listCmd,
		doCmd,
		exportCmd,
		tuiCmd,
		logsCmd,
	)

	return root
}
