package usecase

import (
	"context"
	"fmt"

	"github.com/genesis-cli/genesis/internal/domain"
	"gopkg.in/yaml.v3"
)

// ExportTasksInput contains the parameters for exporting tasks.
type ExportTasksInput struct{}

// ExportTasksOutput contains the exported document.
type ExportTasksOutput struct {
	Document []byte // YAML document
	Count    int    // Number of exported tasks
}

// exportDocument is the YAML shape of an export.
type exportDocument struct {
	Tasks []exportedTask `yaml:"tasks"`
}

// exportedTask is the YAML shape of one task.
// Fields are ordered to match the document layout.
type exportedTask struct {
	Index       int    `yaml:"index"`
	Kind        string `yaml:"kind"`
	Description string `yaml:"description"`
	Done        bool   `yaml:"done"`
	By          string `yaml:"by,omitempty"`
	From        string `yaml:"from,omitempty"`
	To          string `yaml:"to,omitempty"`
	Rendered    string `yaml:"rendered"`
	Input       string `yaml:"input"`
}

// ExportTasks renders the task list as YAML for scripts.
type ExportTasks struct {
	tasks *domain.TaskList
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(tasks *domain.TaskList) *ExportTasks {
	return &ExportTasks{tasks: tasks}
}

// Execute builds the YAML document.
func (uc *ExportTasks) Execute(_ context.Context, _ ExportTasksInput) (*ExportTasksOutput, error) {
	doc := exportDocument{Tasks: []exportedTask{}}
	for i, t := range uc.tasks.Tasks() {
		et := exportedTask{
			Index:       i + 1,
			Kind:        t.Kind.String(),
			Description: t.Description,
			Done:        t.Done,
			Rendered:    t.String(),
			Input:       t.Input,
		}
		switch t.Kind {
		case domain.KindDeadline:
			et.By = t.By.String()
		case domain.KindEvent:
			et.From = t.From.String()
			et.To = t.To.String()
		case domain.KindTodo:
		}
		doc.Tasks = append(doc.Tasks, et)
	}

	content, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return &ExportTasksOutput{Document: content, Count: len(doc.Tasks)}, nil
}
