package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ApplyEnv overrides cfg with TYPIT_* environment variables that are set.
func ApplyEnv(cfg *FileConfig) error {
	var fromEnv FileConfig
	if err := env.Parse(&fromEnv); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	override(&cfg.Paths.CorpusDir, fromEnv.Paths.CorpusDir)
	override(&cfg.Paths.Scorecard, fromEnv.Paths.Scorecard)
	override(&cfg.Paths.DB, fromEnv.Paths.DB)
	override(&cfg.Game.Player, fromEnv.Game.Player)
	return nil
}

// Load reads the TOML file at path and applies environment overrides.
func Load(path string) (FileConfig, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return FileConfig{}, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return FileConfig{}, err
	}
	return cfg, nil
}

func override(target **string, value *string) {
	if value != nil {
		*target = value
	}
}
