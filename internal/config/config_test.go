package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected missing file to be fine, got %v", err)
	}
	if cfg.Paths.CorpusDir != nil || cfg.Game.Player != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[paths]\ncorpus-dir = \"/tmp/corpus\"\n\n[game]\nplayer = \"ann\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Paths.CorpusDir == nil || *cfg.Paths.CorpusDir != "/tmp/corpus" {
		t.Fatalf("unexpected corpus dir: %v", cfg.Paths.CorpusDir)
	}
	if cfg.Game.Player == nil || *cfg.Game.Player != "ann" {
		t.Fatalf("unexpected player: %v", cfg.Game.Player)
	}
	if cfg.Paths.Scorecard != nil {
		t.Fatalf("expected unset scorecard")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[paths\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestLoadAppliesEnvOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[paths]\ncorpus-dir = \"/from/file\"\nscorecard = \"/file/score_card.txt\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TYPIT_CORPUS_DIR", "/from/env")
	t.Setenv("TYPIT_PLAYER", "bob")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg.Paths.CorpusDir != "/from/env" {
		t.Fatalf("expected env to win, got %q", *cfg.Paths.CorpusDir)
	}
	if *cfg.Paths.Scorecard != "/file/score_card.txt" {
		t.Fatalf("expected file value to survive, got %q", *cfg.Paths.Scorecard)
	}
	if cfg.Game.Player == nil || *cfg.Game.Player != "bob" {
		t.Fatalf("expected env player, got %v", cfg.Game.Player)
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultCorpusDir(); got != filepath.Join("/cfg", "typit", "corpus") {
		t.Fatalf("unexpected corpus dir %q", got)
	}
	if got := DefaultScorecardPath(); got != filepath.Join("/data", "typit", "score_card.txt") {
		t.Fatalf("unexpected scorecard path %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "typit", "typit.db") {
		t.Fatalf("unexpected db path %q", got)
	}
}
