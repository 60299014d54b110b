package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/verte-zerg/typit/internal/model"
)

const ruleWidth = 45

// RenderScoreCard prints the score card for the current session's records.
func RenderScoreCard(w io.Writer, records []model.ScoreRecord) error {
	rule := strings.Repeat("-", ruleWidth)
	if _, err := fmt.Fprintln(w, "\n=== Score Card ==="); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, rule); err != nil {
		return err
	}
	headers := []string{"Player", "Score", "WPM"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.PlayerName, strconv.Itoa(r.Score), strconv.Itoa(r.WordsPerMinute)})
	}
	lines := formatTable(headers, rows, map[int]bool{1: true, 2: true})
	if len(lines) > 0 {
		if _, err := fmt.Fprintln(w, lines[0]); err != nil {
			return err
		}
		lines = lines[1:]
	}
	if _, err := fmt.Fprintln(w, rule); err != nil {
		return err
	}
	if len(lines) == 0 {
		if _, err := fmt.Fprintln(w, "No games played yet."); err != nil {
			return err
		}
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, rule)
	return err
}

// HistoryRows formats persisted records as table cells, newest last.
func HistoryRows(records []model.ScoreRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		played := ""
		if !r.PlayedAt.IsZero() {
			played = r.PlayedAt.Local().Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			played,
			string(r.Difficulty),
			r.PlayerName,
			fmt.Sprintf("%d/%d", r.Score, r.Total),
			strconv.Itoa(r.WordsPerMinute),
			fmt.Sprintf("%ds", r.ElapsedSeconds),
		})
	}
	return rows
}

// HistoryHeaders are the column titles matching HistoryRows.
var HistoryHeaders = []string{"Played", "Level", "Player", "Score", "WPM", "Time"}

// RenderHistory prints a summary followed by the history table.
func RenderHistory(w io.Writer, records []model.ScoreRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No games found.")
		return err
	}
	if err := RenderSummary(w, records); err != nil {
		return err
	}
	lines := formatTable(HistoryHeaders, HistoryRows(records), map[int]bool{3: true, 4: true, 5: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderSummary prints aggregate values for records.
func RenderSummary(w io.Writer, records []model.ScoreRecord) error {
	sum := Summarize(records)
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Games: %d\n", sum.Games); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg WPM: %.2f\n", sum.AvgWPM); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best WPM: %d (%s)\n", sum.BestWPM, sum.BestPlayer); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Score: %.2f\n", sum.AvgScore); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Trend: %s\n", Sparkline(WPMSeries(records))); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
