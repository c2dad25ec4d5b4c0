package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "taxodb"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/taxodb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/taxodb by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// CorpusDir returns the directory where the downloaded flat file is kept.
// Returns ~/.cache/taxodb/corpus by default.
func CorpusDir(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "corpus")
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/taxodb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/taxodb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// CorpusFilePath returns the full path to the cached flat file.
func CorpusFilePath(homeDir, fileName string) string {
	return filepath.Join(CorpusDir(homeDir), fileName)
}
