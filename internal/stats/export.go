package stats

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/typit/internal/model"
)

type exportRecord struct {
	PlayedAt       string `yaml:"played_at,omitempty"`
	Player         string `yaml:"player"`
	Level          string `yaml:"level"`
	Score          int    `yaml:"score"`
	Total          int    `yaml:"total"`
	WPM            int    `yaml:"wpm"`
	ElapsedSeconds int64  `yaml:"elapsed_seconds"`
}

// ExportYAML writes records as a YAML sequence.
func ExportYAML(w io.Writer, records []model.ScoreRecord) error {
	out := make([]exportRecord, 0, len(records))
	for _, r := range records {
		played := ""
		if !r.PlayedAt.IsZero() {
			played = r.PlayedAt.UTC().Format(time.RFC3339)
		}
		out = append(out, exportRecord{
			PlayedAt:       played,
			Player:         r.PlayerName,
			Level:          string(r.Difficulty),
			Score:          r.Score,
			Total:          r.Total,
			WPM:            r.WordsPerMinute,
			ElapsedSeconds: r.ElapsedSeconds,
		})
	}
	raw, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	_, err = w.Write(raw)
	return err
}
