// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Paths PathsConfig `toml:"paths"`
	Game  GameConfig  `toml:"game"`
}

// PathsConfig maps resource locations.
type PathsConfig struct {
	CorpusDir *string `toml:"corpus-dir" env:"TYPIT_CORPUS_DIR"`
	Scorecard *string `toml:"scorecard" env:"TYPIT_SCORECARD"`
	DB        *string `toml:"db" env:"TYPIT_DB"`
}

// GameConfig maps game defaults.
type GameConfig struct {
	Player *string `toml:"player" env:"TYPIT_PLAYER"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
