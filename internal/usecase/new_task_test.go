package usecase

import (
	"context"
	"testing"

	"github.com/genesis-cli/genesis/internal/domain"
	"github.com/genesis-cli/genesis/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask_Execute(t *testing.T) {
	tasks := domain.NewTaskList()
	logger := &testutil.MockLogger{}
	uc := NewNewTask(tasks, logger)

	cmd, err := domain.ParseCommand("todo read book")
	require.NoError(t, err)

	out, err := uc.Execute(context.Background(), NewTaskInput{Command: cmd})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Count)
	assert.Equal(t, "todo read book", out.Task.Input)
	assert.Equal(t, []testutil.LogEntry{
		{Level: "info", Category: "task", Msg: "added #1: [T][ ] read book"},
	}, logger.Entries)
}

func TestNewTask_Execute_NotCreation(t *testing.T) {
	tasks := domain.NewTaskList()
	uc := NewNewTask(tasks, nil)

	_, err := uc.Execute(context.Background(), NewTaskInput{Command: domain.Command{Type: domain.CommandList}})
	assert.ErrorIs(t, err, domain.ErrUnknownCommand)
	assert.Zero(t, tasks.Len())
}
