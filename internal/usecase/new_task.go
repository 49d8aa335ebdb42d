// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/genesis-cli/genesis/internal/domain"
)

// NewTaskInput contains the parameters for creating a new task.
type NewTaskInput struct {
	Command domain.Command // A parsed todo, deadline or event command
}

// NewTaskOutput contains the result of creating a new task.
type NewTaskOutput struct {
	Task  *domain.Task // The created task
	Count int          // Number of tasks after the add
}

// NewTask is the use case for creating a new task.
type NewTask struct {
	tasks  *domain.TaskList
	logger domain.Logger
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(tasks *domain.TaskList, logger domain.Logger) *NewTask {
	return &NewTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute appends the task described by the command.
func (uc *NewTask) Execute(_ context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	task := in.Command.NewTask()
	if task == nil {
		return nil, fmt.Errorf("%w: %s does not create a task", domain.ErrUnknownCommand, in.Command.Type)
	}

	count := uc.tasks.Add(task)

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("added #%d: %s", count, task))
	}

	return &NewTaskOutput{Task: task, Count: count}, nil
}
