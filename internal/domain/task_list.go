package domain

import (
	"fmt"
	"slices"
	"strconv"
)

// TaskList is the ordered collection of tasks.
// Callers address tasks by 1-based position; the zero value is an empty list.
type TaskList struct {
	tasks []*Task
}

// NewTaskList creates a list holding the given tasks in order.
func NewTaskList(tasks ...*Task) *TaskList {
	return &TaskList{tasks: slices.Clone(tasks)}
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Tasks returns the tasks in order. The slice is a copy.
func (l *TaskList) Tasks() []*Task {
	return slices.Clone(l.tasks)
}

// Add appends a task and returns the new count.
func (l *TaskList) Add(task *Task) int {
	l.tasks = append(l.tasks, task)
	return len(l.tasks)
}

// Get returns the task at the 1-based position n.
func (l *TaskList) Get(n int) (*Task, error) {
	i, err := l.index(n)
	if err != nil {
		return nil, err
	}
	return l.tasks[i], nil
}

// Mark marks the task at position n as done.
func (l *TaskList) Mark(n int) (*Task, error) {
	task, err := l.Get(n)
	if err != nil {
		return nil, err
	}
	task.Mark()
	return task, nil
}

// Unmark marks the task at position n as not done.
func (l *TaskList) Unmark(n int) (*Task, error) {
	task, err := l.Get(n)
	if err != nil {
		return nil, err
	}
	task.Unmark()
	return task, nil
}

// Delete removes the task at position n. Later tasks move up by one.
func (l *TaskList) Delete(n int) (*Task, error) {
	i, err := l.index(n)
	if err != nil {
		return nil, err
	}
	task := l.tasks[i]
	l.tasks = slices.Delete(l.tasks, i, i+1)
	return task, nil
}

// Lines returns the numbered listing, one entry per task: "1. [T][ ] read book".
func (l *TaskList) Lines() []string {
	lines := make([]string, 0, len(l.tasks))
	for i, t := range l.tasks {
		lines = append(lines, strconv.Itoa(i+1)+". "+t.String())
	}
	return lines
}

// index translates a 1-based position into a slice index.
// It is the only bounds check; every positional operation goes through it.
func (l *TaskList) index(n int) (int, error) {
	i := n - 1
	if i < 0 || i >= len(l.tasks) {
		return 0, fmt.Errorf("%w: %d", ErrTaskNotFound, n)
	}
	return i, nil
}
