package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultConfigPath returns the default path for the serving config directory.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "serving", "config")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "serving")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "serving")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "serving")
		}
		return filepath.Join(home, ".config", "serving")
	}
}

// DefaultLogFile returns the default path for the serving log file.
func DefaultLogFile() string {
	return filepath.Join("logs", "servingd.log")
}
