package stats

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/typit/internal/model"
	"github.com/verte-zerg/typit/internal/store"
)

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "typit.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		rec := model.ScoreRecord{
			PlayerName:     "ann",
			Score:          i + 1,
			WordsPerMinute: 10 * (i + 1),
			Difficulty:     model.Easy,
			Total:          5,
			ElapsedSeconds: 6,
			PlayedAt:       time.Unix(0, 0).Add(time.Duration(i) * time.Minute),
		}
		if err := st.AppendScore(ctx, rec); err != nil {
			t.Fatalf("append score: %v", err)
		}
	}

	report, err := BuildReport(ctx, st, model.HistoryFilter{Player: "ann", Last: 2})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(report.Records))
	}
	if report.Records[0].Score != 2 || report.Records[1].Score != 3 {
		t.Fatalf("expected most recent records in order, got %+v", report.Records)
	}
	if report.Summary.BestWPM != 30 || len(report.Trend) != 2 {
		t.Fatalf("unexpected summary %+v trend %v", report.Summary, report.Trend)
	}

	var b strings.Builder
	if err := RenderHistory(&b, report.Records); err != nil {
		t.Fatalf("render history: %v", err)
	}
	if !strings.Contains(b.String(), "Games: 2") || !strings.Contains(b.String(), "3/5") {
		t.Fatalf("unexpected history output:\n%s", b.String())
	}
}
