package domain

import "path/filepath"

// GlobalConfigDir returns the global config directory under configHome.
// Format: <configHome>/genesis
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "genesis")
}

// LocalConfigPath returns the path to the local config file in dir.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}

// LogDir returns the log directory that sits next to the data file.
// Format: <data dir>/logs
func LogDir(dataPath string) string {
	return filepath.Join(filepath.Dir(dataPath), "logs")
}

// LogPath returns the path to the log file.
func LogPath(logDir string) string {
	return filepath.Join(logDir, "genesis.log")
}

// ResolveDataPath returns path joined to dir unless it is already absolute.
func ResolveDataPath(dir, path string) string {
	if path == "" {
		path = DefaultDataPath
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
