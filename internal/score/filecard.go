package score

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/verte-zerg/typit/internal/apperr"
	"github.com/verte-zerg/typit/internal/model"
)

// FileCard appends records to a plain-text scorecard, one
// "name score wpm" line per record.
type FileCard struct {
	Path string
}

// AppendScore implements Sink. Existing content is never truncated.
func (c FileCard) AppendScore(_ context.Context, rec model.ScoreRecord) error {
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", apperr.ErrResourceUnavailable, c.Path, err)
	}
	file, err := os.OpenFile(c.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", apperr.ErrResourceUnavailable, c.Path, err)
	}
	if _, err := fmt.Fprintln(file, FormatLine(rec)); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write scorecard: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close scorecard: %w", err)
	}
	return nil
}

// FormatLine serializes rec in scorecard order: name, score, wpm.
func FormatLine(rec model.ScoreRecord) string {
	return fmt.Sprintf("%s %d %d", rec.PlayerName, rec.Score, rec.WordsPerMinute)
}
