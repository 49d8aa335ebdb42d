package usecase

import (
	"context"
	"fmt"

	"github.com/genesis-cli/genesis/internal/domain"
)

// LoadTasksInput contains the parameters for loading stored tasks.
type LoadTasksInput struct{}

// SkippedLine is a stored line that could not be replayed.
// Fields are ordered to minimize memory padding.
type SkippedLine struct {
	Err   error  // Why the line was rejected
	Input string // Raw command text
	Line  int    // 1-based line number in the data file
}

// LoadTasksOutput contains the result of loading stored tasks.
type LoadTasksOutput struct {
	Skipped []SkippedLine // Lines that were rejected
	Loaded  int           // Number of tasks created
}

// LoadTasks rebuilds the task list by replaying every stored line through
// the command parser without saving or confirming.
type LoadTasks struct {
	repo    domain.TaskRepository
	logger  domain.Logger
	execute *ExecuteCommand
}

// NewLoadTasks creates a new LoadTasks use case.
func NewLoadTasks(tasks *domain.TaskList, repo domain.TaskRepository, logger domain.Logger) *LoadTasks {
	return &LoadTasks{
		repo:    repo,
		logger:  logger,
		execute: NewExecuteCommand(tasks, repo, logger),
	}
}

// Execute replays the data file into the task list.
// A missing data file is returned as domain.ErrDataFileNotFound and leaves
// the list empty; a bad line is skipped and reported in the output.
func (uc *LoadTasks) Execute(ctx context.Context, _ LoadTasksInput) (*LoadTasksOutput, error) {
	stored, err := uc.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	out := &LoadTasksOutput{}
	for _, s := range stored {
		res, err := uc.execute.Execute(ctx, ExecuteCommandInput{Line: s.Input, Replay: true})
		if err != nil {
			out.Skipped = append(out.Skipped, SkippedLine{Err: err, Input: s.Input, Line: s.Line})
			if uc.logger != nil {
				uc.logger.Warn("replay", fmt.Sprintf("line %d skipped: %v", s.Line, err))
			}
			continue
		}
		if res.Action == ActionAdd {
			out.Loaded++
			if s.Done {
				res.Task.Mark()
			}
		}
	}

	if uc.logger != nil {
		uc.logger.Debug("replay", fmt.Sprintf("loaded %d tasks, skipped %d lines", out.Loaded, len(out.Skipped)))
	}
	return out, nil
}
