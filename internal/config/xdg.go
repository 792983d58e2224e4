package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "trickywords"
	configFileName = "config.toml"
	dbFileName     = "groups.db"
)

// baseDir resolves an XDG base directory. Relative values are ignored in
// favor of the home-relative fallback.
func baseDir(env string, fallback ...string) string {
	if v := os.Getenv(env); v != "" && filepath.IsAbs(v) {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// ConfigDir is the application's directory under $XDG_CONFIG_HOME.
func ConfigDir() string {
	return filepath.Join(baseDir("XDG_CONFIG_HOME", ".config"), appName)
}

// DataDir is the application's directory under $XDG_DATA_HOME.
func DataDir() string {
	return filepath.Join(baseDir("XDG_DATA_HOME", ".local", "share"), appName)
}

// DefaultDBPath returns the custom group database path.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), dbFileName)
}

// DefaultConfigPath returns the TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), configFileName)
}
