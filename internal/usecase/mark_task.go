package usecase

import (
	"context"
	"fmt"

	"github.com/genesis-cli/genesis/internal/domain"
)

// MarkTaskInput contains the parameters for marking a task.
type MarkTaskInput struct {
	Index int  // 1-based task position
	Done  bool // true marks the task done, false marks it not done
}

// MarkTaskOutput contains the result of marking a task.
type MarkTaskOutput struct {
	Task *domain.Task // The updated task
}

// MarkTask is the use case for setting a task's completion flag.
type MarkTask struct {
	tasks  *domain.TaskList
	logger domain.Logger
}

// NewMarkTask creates a new MarkTask use case.
func NewMarkTask(tasks *domain.TaskList, logger domain.Logger) *MarkTask {
	return &MarkTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute sets the completion flag of the task at in.Index.
func (uc *MarkTask) Execute(_ context.Context, in MarkTaskInput) (*MarkTaskOutput, error) {
	var task *domain.Task
	var err error
	if in.Done {
		task, err = uc.tasks.Mark(in.Index)
	} else {
		task, err = uc.tasks.Unmark(in.Index)
	}
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("#%d done=%t: %s", in.Index, in.Done, task.Description))
	}

	return &MarkTaskOutput{Task: task}, nil
}
