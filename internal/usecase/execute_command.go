package usecase

import (
	"context"
	"fmt"

	"github.com/genesis-cli/genesis/internal/domain"
)

// Action identifies what an executed command did.
type Action int

// Actions.
const (
	ActionExit Action = iota
	ActionList
	ActionAdd
	ActionMark
	ActionUnmark
	ActionDelete
)

// ExecuteCommandInput contains the parameters for executing a command line.
type ExecuteCommandInput struct {
	Line   string // Raw input line
	Replay bool   // Apply without saving; only mutating commands are allowed
}

// ExecuteCommandOutput contains the result of executing a command line.
// Fields are ordered to minimize memory padding.
type ExecuteCommandOutput struct {
	Task   *domain.Task // Task added, marked, unmarked or deleted
	Lines  []string     // Listing (ActionList)
	Action Action       // What the command did
	Count  int          // Task count after ActionAdd or ActionDelete
}

// ExecuteCommand parses a line, applies it to the task list and saves the
// list after every successful mutation.
type ExecuteCommand struct {
	tasks      *domain.TaskList
	repo       domain.TaskRepository
	logger     domain.Logger
	newTask    *NewTask
	listTasks  *ListTasks
	markTask   *MarkTask
	deleteTask *DeleteTask
}

// NewExecuteCommand creates a new ExecuteCommand use case.
func NewExecuteCommand(tasks *domain.TaskList, repo domain.TaskRepository, logger domain.Logger) *ExecuteCommand {
	return &ExecuteCommand{
		tasks:      tasks,
		repo:       repo,
		logger:     logger,
		newTask:    NewNewTask(tasks, logger),
		listTasks:  NewListTasks(tasks),
		markTask:   NewMarkTask(tasks, logger),
		deleteTask: NewDeleteTask(tasks, logger),
	}
}

// Execute runs one command line.
// Every failure leaves the task list unchanged, except a failed save, which
// keeps the in-memory change and returns an error wrapping domain.ErrSaveTasks.
func (uc *ExecuteCommand) Execute(ctx context.Context, in ExecuteCommandInput) (*ExecuteCommandOutput, error) {
	cmd, err := domain.ParseCommand(in.Line)
	if err != nil {
		uc.debug(fmt.Sprintf("rejected %q: %v", in.Line, err))
		return nil, err
	}

	if in.Replay && !cmd.Mutates() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotReplayable, cmd.Type)
	}

	out, err := uc.apply(ctx, cmd)
	if err != nil {
		uc.debug(fmt.Sprintf("rejected %q: %v", in.Line, err))
		return nil, err
	}

	if in.Replay || !cmd.Mutates() {
		return out, nil
	}

	if err := uc.repo.Save(uc.tasks.Tasks()); err != nil {
		if uc.logger != nil {
			uc.logger.Error("store", fmt.Sprintf("save after %s: %v", cmd.Type, err))
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrSaveTasks, err)
	}

	return out, nil
}

func (uc *ExecuteCommand) apply(ctx context.Context, cmd domain.Command) (*ExecuteCommandOutput, error) {
	switch cmd.Type {
	case domain.CommandExit:
		return &ExecuteCommandOutput{Action: ActionExit}, nil

	case domain.CommandList:
		out, err := uc.listTasks.Execute(ctx, ListTasksInput{})
		if err != nil {
			return nil, err
		}
		return &ExecuteCommandOutput{Action: ActionList, Lines: out.Lines}, nil

	case domain.CommandMark, domain.CommandUnmark:
		done := cmd.Type == domain.CommandMark
		out, err := uc.markTask.Execute(ctx, MarkTaskInput{Index: cmd.Index, Done: done})
		if err != nil {
			return nil, err
		}
		action := ActionUnmark
		if done {
			action = ActionMark
		}
		return &ExecuteCommandOutput{Action: action, Task: out.Task}, nil

	case domain.CommandDelete:
		out, err := uc.deleteTask.Execute(ctx, DeleteTaskInput{Index: cmd.Index})
		if err != nil {
			return nil, err
		}
		return &ExecuteCommandOutput{Action: ActionDelete, Task: out.Task, Count: out.Count}, nil

	case domain.CommandTodo, domain.CommandDeadline, domain.CommandEvent:
		out, err := uc.newTask.Execute(ctx, NewTaskInput{Command: cmd})
		if err != nil {
			return nil, err
		}
		return &ExecuteCommandOutput{Action: ActionAdd, Task: out.Task, Count: out.Count}, nil
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCommand, cmd.Type)
}

func (uc *ExecuteCommand) debug(msg string) {
	if uc.logger != nil {
		uc.logger.Debug("command", msg)
	}
}
