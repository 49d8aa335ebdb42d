package usecase

import (
	"context"

	"github.com/genesis-cli/genesis/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct{}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Lines []string // Numbered rendered tasks, empty when there are none
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks *domain.TaskList
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks *domain.TaskList) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute returns the numbered listing.
func (uc *ListTasks) Execute(_ context.Context, _ ListTasksInput) (*ListTasksOutput, error) {
	return &ListTasksOutput{Lines: uc.tasks.Lines()}, nil
}
