// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"github.com/genesis-cli/genesis/internal/domain"
)

// MockTaskRepository is a test double for domain.TaskRepository.
// Save keeps what was written so a later Load reads it back.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Stored    []domain.StoredTask
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

// NewMockTaskRepository creates an empty MockTaskRepository.
func NewMockTaskRepository(stored ...domain.StoredTask) *MockTaskRepository {
	return &MockTaskRepository{Stored: stored}
}

// Load returns the stored tasks.
func (m *MockTaskRepository) Load() ([]domain.StoredTask, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return append([]domain.StoredTask(nil), m.Stored...), nil
}

// Save records the tasks.
func (m *MockTaskRepository) Save(tasks []*domain.Task) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Stored = make([]domain.StoredTask, 0, len(tasks))
	for i, t := range tasks {
		m.Stored = append(m.Stored, domain.StoredTask{Input: t.Input, Line: i + 1, Done: t.Done})
	}
	return nil
}

// Inputs returns the raw command lines currently stored.
func (m *MockTaskRepository) Inputs() []string {
	inputs := make([]string, 0, len(m.Stored))
	for _, s := range m.Stored {
		inputs = append(inputs, s.Input)
	}
	return inputs
}

// LogEntry is one entry recorded by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger.
type MockLogger struct {
	Entries []LogEntry
}

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "info", Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "debug", Category: category, Msg: msg})
}

// Warn records a warn entry.
func (m *MockLogger) Warn(category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "warn", Category: category, Msg: msg})
}

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "error", Category: category, Msg: msg})
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config    *domain.Config
	LoadErr   error
	GlobalErr error
}

// NewMockConfigLoader creates a MockConfigLoader returning the default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.GlobalErr != nil {
		return nil, m.GlobalErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr      error
	InitConfig   *domain.Config
	LocalConfig  domain.ConfigInfo
	GlobalConfig domain.ConfigInfo
	InitLocal    bool
	InitGlobal   bool
}

// GetLocalConfigInfo returns the configured local info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.LocalConfig
}

// GetGlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfig
}

// InitLocalConfig records the call.
func (m *MockConfigManager) InitLocalConfig(cfg *domain.Config) error {
	m.InitLocal = true
	m.InitConfig = cfg
	return m.InitErr
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) error {
	m.InitGlobal = true
	m.InitConfig = cfg
	return m.InitErr
}

// Ensure mocks implement their interfaces.
var (
	_ domain.TaskRepository = (*MockTaskRepository)(nil)
	_ domain.Logger         = (*MockLogger)(nil)
	_ domain.ConfigLoader   = (*MockConfigLoader)(nil)
	_ domain.ConfigManager  = (*MockConfigManager)(nil)
)
