package cli

import (
	"errors"
	"strings"

	"github.com/genesis-cli/genesis/internal/app"
	"github.com/genesis-cli/genesis/internal/usecase"
	"github.com/spf13/cobra"
)

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display the task list with 1-based numbers.

Output format:
  1. [T][ ] read book
  2. [D][X] submit report (by: Dec 1 2024)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := loadTasks(ctx, c, newPresenter(cmd.ErrOrStderr(), c.AppConfig.UI.NoColor)); err != nil {
				return err
			}

			out, err := c.ExecuteCommandUseCase().Execute(ctx, usecase.ExecuteCommandInput{Line: "list"})
			if err != nil {
				return err
			}
			newPresenter(cmd.OutOrStdout(), c.AppConfig.UI.NoColor).Info(out.Messages()...)
			return nil
		},
	}
}

// newDoCommand creates the do command.
func newDoCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "do <command...>",
		Short: "Run a single command",
		Long: `Run one command line without entering the interactive prompt.

The arguments are joined with spaces and handled exactly like a line typed
at the prompt. A rejected command exits with a non-zero status.

Examples:
  genesis do todo read book
  genesis do deadline submit report /by 2024-12-01
  genesis do mark 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := loadTasks(ctx, c, newPresenter(cmd.ErrOrStderr(), c.AppConfig.UI.NoColor)); err != nil {
				return err
			}

			line := strings.Join(args, " ")
			out, err := c.ExecuteCommandUseCase().Execute(ctx, usecase.ExecuteCommandInput{Line: line})
			if err != nil {
				return errors.New(usecase.ErrorMessage(err))
			}
			present(newPresenter(cmd.OutOrStdout(), c.AppConfig.UI.NoColor), out)
			return nil
		},
	}
}

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print tasks as YAML",
		Long: `Print the task list as a YAML document on stdout.

The document is meant for scripts. The data file stays the source of truth.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := loadTasks(ctx, c, newPresenter(cmd.ErrOrStderr(), c.AppConfig.UI.NoColor)); err != nil {
				return err
			}

			out, err := c.ExportTasksUseCase().Execute(ctx, usecase.ExportTasksInput{})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out.Document)
			return err
		},
	}
}
