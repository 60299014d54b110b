package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typit/internal/model"
)

func TestFormatTableScoreCardColumns(t *testing.T) {
	headers := []string{"Player", "Score", "WPM"}
	rows := [][]string{
		{"王小明明", "4", "30"},
		{"ann", "10", "7"},
	}

	lines := formatTable(headers, rows, map[int]bool{1: true, 2: true})
	want := []string{
		"Player   Score WPM",
		"王小明明     4  30",
		"ann         10   7",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestHistoryRowsAlignWideNames(t *testing.T) {
	records := []model.ScoreRecord{
		{PlayerName: "王小明明", Score: 4, Total: 5, WordsPerMinute: 30, Difficulty: model.Easy, ElapsedSeconds: 8},
		{PlayerName: "ann", Score: 2, Total: 3, WordsPerMinute: 12, Difficulty: model.Hard, ElapsedSeconds: 10},
	}
	rows := HistoryRows(records)
	if rows[0][2] != "王小明明" || rows[0][3] != "4/5" || rows[0][5] != "8s" {
		t.Fatalf("unexpected history row: %q", rows[0])
	}

	lines := formatTable(HistoryHeaders, rows, map[int]bool{3: true, 4: true, 5: true})
	if lines[1] != "       easy  王小明明   4/5  30   8s" {
		t.Fatalf("unexpected wide row: %q", lines[1])
	}
	if lines[2] != "       hard  ann        2/3  12  10s" {
		t.Fatalf("unexpected narrow row: %q", lines[2])
	}
	for i, line := range lines {
		if got, want := runewidth.StringWidth(line), runewidth.StringWidth(lines[0]); got != want {
			t.Fatalf("line %d has width %d, header has %d", i, got, want)
		}
	}
}

func TestRenderScoreCardWideName(t *testing.T) {
	var buf bytes.Buffer
	records := []model.ScoreRecord{
		{PlayerName: "王小明明", Score: 4, WordsPerMinute: 30},
		{PlayerName: "ann", Score: 10, WordsPerMinute: 7},
	}
	if err := RenderScoreCard(&buf, records); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Player   Score WPM", "王小明明     4  30", "ann         10   7"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in score card:\n%s", want, out)
		}
	}
}
