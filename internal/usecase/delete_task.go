package usecase

import (
	"context"
	"fmt"

	"github.com/genesis-cli/genesis/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	Index int // 1-based task position
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task  *domain.Task // The removed task
	Count int          // Number of tasks after the delete
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	tasks  *domain.TaskList
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks *domain.TaskList, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute removes the task at in.Index. Later tasks move up by one.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	task, err := uc.tasks.Delete(in.Index)
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("deleted #%d: %s", in.Index, task))
	}

	return &DeleteTaskOutput{Task: task, Count: uc.tasks.Len()}, nil
}
