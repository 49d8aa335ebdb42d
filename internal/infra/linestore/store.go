// Package linestore provides a flat text file implementation of TaskRepository.
//
// Each task occupies one line holding its completion flag and the raw
// command that created it:
//
//	0 | todo read book
//	1 | deadline submit report /by 2024-12-01
//
// Lines without the flag prefix are read as not-done raw commands, which is
// the format written by earlier versions.
package linestore

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/genesis-cli/genesis/internal/domain"
)

const (
	flagDone    = "1"
	flagNotDone = "0"
	separator   = " | "
)

// Ensure Store implements TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)

// Store implements domain.TaskRepository using a line-oriented text file.
type Store struct {
	path string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the data file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads every stored task in file order.
func (s *Store) Load() ([]domain.StoredTask, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDataFileNotFound, s.path)
		}
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var tasks []domain.StoredTask
	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		stored := DecodeLine(line)
		stored.Line = i + 1
		tasks = append(tasks, stored)
	}
	return tasks, nil
}

// Save rewrites the whole file with tasks in order.
func (s *Store) Save(tasks []*domain.Task) error {
	var buf bytes.Buffer
	for _, t := range tasks {
		buf.WriteString(EncodeLine(t))
		buf.WriteByte('\n')
	}
	return s.write(buf.Bytes())
}

// EncodeLine returns the stored form of a task.
func EncodeLine(t *domain.Task) string {
	flag := flagNotDone
	if t.Done {
		flag = flagDone
	}
	return flag + separator + t.Input
}

// DecodeLine parses a stored line. Lines without a flag prefix are
// returned as-is and not done.
func DecodeLine(line string) domain.StoredTask {
	flag, input, found := strings.Cut(line, separator)
	if found {
		switch flag {
		case flagDone:
			return domain.StoredTask{Input: input, Done: true}
		case flagNotDone:
			return domain.StoredTask{Input: input}
		}
	}
	return domain.StoredTask{Input: line}
}

func (s *Store) write(content []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
