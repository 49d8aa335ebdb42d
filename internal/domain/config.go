package domain

import (
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config file names.
const (
	ConfigFileName      = "config.toml"   // Global config: $XDG_CONFIG_HOME/genesis/config.toml
	LocalConfigFileName = ".genesis.toml" // Local config in the working directory
)

// Default settings.
const (
	DefaultDataPath = "data/tasks.txt"
	DefaultLogLevel = "info"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Storage  StorageConfig `toml:"storage"`
	Log      LogConfig     `toml:"log"`
	UI       UIConfig      `toml:"ui"`
}

// StorageConfig holds settings from the [storage] section.
type StorageConfig struct {
	Path string `toml:"path,omitempty"` // Data file path, relative to the working directory
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn or error
}

// UIConfig holds settings from the [ui] section.
type UIConfig struct {
	Prompt  string `toml:"prompt,omitempty"`   // Prompt printed before each input line (default: none)
	NoColor bool   `toml:"no_color,omitempty"` // Disable styled output
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{Path: DefaultDataPath},
		Log:     LogConfig{Level: DefaultLogLevel},
	}
}

// RenderConfigTemplate renders cfg as a commented TOML file.
func RenderConfigTemplate(cfg *Config) string {
	var b strings.Builder
	b.WriteString("# genesis configuration\n")
	b.WriteString("#\n")
	b.WriteString("# [storage] path     data file, relative to the working directory\n")
	b.WriteString("# [log]     level    debug, info, warn or error\n")
	b.WriteString("# [ui]      prompt   text printed before each command\n")
	b.WriteString("# [ui]      no_color disable styled output\n\n")

	content, err := toml.Marshal(cfg)
	if err != nil {
		return b.String()
	}
	b.Write(content)
	return b.String()
}
