package domain

// StoredTask is one task line read back from the data file.
// Fields are ordered to minimize memory padding.
type StoredTask struct {
	Input string // Raw command line that created the task
	Line  int    // 1-based line number in the data file
	Done  bool   // Completion flag
}

// TaskRepository persists the task list.
type TaskRepository interface {
	// Load reads every stored task in order.
	// Returns ErrDataFileNotFound if nothing has been saved yet.
	Load() ([]StoredTask, error)

	// Save replaces the stored list with tasks, in order.
	Save(tasks []*Task) error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (local over global over defaults).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetLocalConfigInfo returns information about the working-directory config file.
	GetLocalConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitLocalConfig creates the working-directory config file.
	InitLocalConfig(cfg *Config) error

	// InitGlobalConfig creates the global config file.
	InitGlobalConfig(cfg *Config) error
}

// ConfigInfo describes a configuration file.
type ConfigInfo struct {
	Path    string // Absolute path to the file
	Content string // File content (empty if not found)
	Exists  bool   // Whether the file exists
}

// Logger writes diagnostic log entries.
type Logger interface {
	Info(category, msg string)
	Debug(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}
