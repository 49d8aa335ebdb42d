package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/genesis-cli/genesis/internal/app"
	"github.com/genesis-cli/genesis/internal/domain"
	"github.com/genesis-cli/genesis/internal/usecase"
	"github.com/spf13/cobra"
)

// runREPL greets the user, loads the data file and executes one command per
// input line until exit or end of input.
func runREPL(cmd *cobra.Command, c *app.Container) error {
	ctx := cmd.Context()
	p := newPresenter(cmd.OutOrStdout(), c.AppConfig.UI.NoColor)

	p.Info(strings.Split(usecase.MsgGreeting, "\n")...)
	// The session goes on with an empty list when the data file is unreadable.
	if err := loadTasks(ctx, c, p); err != nil {
		p.Error(usecase.LoadErrorMessage(err))
	}

	exec := c.ExecuteCommandUseCase()
	in := newLineReader(cmd.InOrStdin(), maxInputLine)
	for {
		if prompt := c.AppConfig.UI.Prompt; prompt != "" {
			p.Prompt(prompt)
		}
		line, err := in.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, domain.ErrLineTooLong) {
			c.Logger.Warn("input line rejected", "limit", maxInputLine)
			p.Error(usecase.ErrorMessage(err))
			continue
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		out, err := exec.Execute(ctx, usecase.ExecuteCommandInput{Line: line})
		if err != nil {
			p.Error(usecase.ErrorMessage(err))
			continue
		}
		present(p, out)
		if out.Action == usecase.ActionExit {
			return nil
		}
	}
}

// loadTasks replays the data file into the container's task list.
// A missing data file and rejected lines are reported through p; any other
// load failure is logged and returned.
func loadTasks(ctx context.Context, c *app.Container, p *presenter) error {
	out, err := c.LoadTasksUseCase().Execute(ctx, usecase.LoadTasksInput{})
	if err != nil {
		if errors.Is(err, domain.ErrDataFileNotFound) {
			c.Logger.Info("data file not found", "path", c.Config.DataPath)
			p.Error(usecase.MsgDataNotFound)
			return nil
		}
		c.Logger.Error("load tasks failed", "path", c.Config.DataPath, "error", err)
		return err
	}
	for _, s := range out.Skipped {
		c.Logger.Warn("skipped data file line", "line", s.Line, "error", s.Err)
		p.Notice(usecase.SkippedMessage(s))
	}
	c.Logger.Debug("loaded tasks", "path", c.Config.DataPath, "loaded", out.Loaded, "skipped", len(out.Skipped))
	return nil
}

// present prints the confirmation for an executed command.
func present(p *presenter, out *usecase.ExecuteCommandOutput) {
	if out.Action == usecase.ActionList {
		p.Info(out.Messages()...)
		return
	}
	p.Success(out.Messages()...)
}
