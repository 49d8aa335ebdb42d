package linestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/genesis-cli/genesis/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "data", "tasks.txt"))
}

func TestStore_Load_NotFound(t *testing.T) {
	store := newTestStore(t)

	tasks, err := store.Load()
	assert.ErrorIs(t, err, domain.ErrDataFileNotFound)
	assert.Nil(t, tasks)
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)

	done := domain.NewDeadline("submit report", domain.NewDate(2024, time.December, 1), "deadline submit report /by 2024-12-01")
	done.Mark()
	tasks := []*domain.Task{
		domain.NewTodo("read book", "todo read book"),
		done,
		domain.NewEvent("trip", domain.NewDate(2024, time.June, 1), domain.NewDate(2024, time.June, 10), "event trip /from 2024-06-01 /to 2024-06-10"),
	}

	require.NoError(t, store.Save(tasks))

	content, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "0 | todo read book\n"+
		"1 | deadline submit report /by 2024-12-01\n"+
		"0 | event trip /from 2024-06-01 /to 2024-06-10\n", string(content))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []domain.StoredTask{
		{Input: "todo read book", Line: 1},
		{Input: "deadline submit report /by 2024-12-01", Line: 2, Done: true},
		{Input: "event trip /from 2024-06-01 /to 2024-06-10", Line: 3},
	}, got)
}

func TestStore_Save_Overwrites(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save([]*domain.Task{
		domain.NewTodo("a", "todo a"),
		domain.NewTodo("b", "todo b"),
	}))
	require.NoError(t, store.Save([]*domain.Task{
		domain.NewTodo("b", "todo b"),
	}))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "todo b", got[0].Input)

	// Temp file must not be left behind
	_, err = os.Stat(store.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestStore_Save_Empty(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(nil))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_Load_LegacyAndBlankLines(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o750))
	content := "todo read book\r\n\n1 | todo done one\n   \ndeadline x /by 2024-01-01\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0o600))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []domain.StoredTask{
		{Input: "todo read book", Line: 1},
		{Input: "todo done one", Line: 3, Done: true},
		{Input: "deadline x /by 2024-01-01", Line: 5},
	}, got)
}

func TestStore_SaveAndLoad_LongLine(t *testing.T) {
	store := newTestStore(t)
	desc := strings.Repeat("y", 70000)
	input := "todo " + desc

	require.NoError(t, store.Save([]*domain.Task{
		domain.NewTodo(desc, input),
		domain.NewTodo("after", "todo after"),
	}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []domain.StoredTask{
		{Input: input, Line: 1},
		{Input: "todo after", Line: 2},
	}, got)
}

func TestDecodeLine(t *testing.T) {
	tests := []struct {
		line string
		want domain.StoredTask
	}{
		{"0 | todo a", domain.StoredTask{Input: "todo a"}},
		{"1 | todo a", domain.StoredTask{Input: "todo a", Done: true}},
		{"todo a | b", domain.StoredTask{Input: "todo a | b"}},
		{"2 | todo a", domain.StoredTask{Input: "2 | todo a"}},
		{"1 | todo a | b", domain.StoredTask{Input: "todo a | b", Done: true}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeLine(tt.line))
		})
	}
}

func TestEncodeLine(t *testing.T) {
	task := domain.NewTodo("a | b", "todo a | b")
	assert.Equal(t, "0 | todo a | b", EncodeLine(task))
	task.Mark()
	assert.Equal(t, "1 | todo a | b", EncodeLine(task))
	assert.Equal(t, domain.StoredTask{Input: "todo a | b", Done: true}, DecodeLine(EncodeLine(task)))
}
