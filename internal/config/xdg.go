// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "typit"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultCorpusDir returns the directory holding practice and game corpora.
func DefaultCorpusDir() string {
	return filepath.Join(XDGConfigHome(), appName, "corpus")
}

// DefaultScorecardPath returns the plain-text scorecard path.
func DefaultScorecardPath() string {
	return filepath.Join(XDGDataHome(), appName, "score_card.txt")
}

// DefaultDBPath returns the default path for the SQLite history database.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), appName, appName+".db")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}
