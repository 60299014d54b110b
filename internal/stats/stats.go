// Package stats contains typing metrics and score reporting.
package stats

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/typit/internal/apperr"
	"github.com/verte-zerg/typit/internal/model"
)

const (
	charsPerWord = 5.0
	sparkChars   = " .:-=+*#%@"
)

// ComputeTypingStats scores a typed attempt against its reference.
// Accuracy counts positional rune matches over the reference length, so
// characters typed past the end of the reference are ignored. WPM treats every
// five reference characters as one word.
func ComputeTypingStats(reference, typed string, elapsed time.Duration) (model.TypingStats, error) {
	refRunes := []rune(reference)
	if len(refRunes) == 0 {
		return model.TypingStats{}, fmt.Errorf("%w: reference text is empty", apperr.ErrInvalidInput)
	}
	if elapsed <= 0 {
		return model.TypingStats{}, fmt.Errorf("%w: elapsed time must be positive", apperr.ErrInvalidInput)
	}

	correct := 0
	for i, r := range []rune(typed) {
		if i < len(refRunes) && r == refRunes[i] {
			correct++
		}
	}
	total := float64(len(refRunes))
	minutes := elapsed.Seconds() / 60.0
	return model.TypingStats{
		Accuracy: float64(correct) / total * 100.0,
		WPM:      (total / charsPerWord) / minutes,
	}, nil
}

// GameWPM converts correctly typed words over whole elapsed seconds into a
// truncated words-per-minute figure. Rounds shorter than a second score 0.
func GameWPM(score int, elapsedSeconds int64) int {
	if elapsedSeconds <= 0 {
		return 0
	}
	return int(float64(score) / float64(elapsedSeconds) * 60)
}

// Summary aggregates a list of score records.
type Summary struct {
	Games      int
	AvgWPM     float64
	BestWPM    int
	BestPlayer string
	AvgScore   float64
}

// Summarize computes aggregate values for records.
func Summarize(records []model.ScoreRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}
	var totalWPM, totalScore int
	sum := Summary{Games: len(records), BestWPM: -1}
	for _, r := range records {
		totalWPM += r.WordsPerMinute
		totalScore += r.Score
		if r.WordsPerMinute > sum.BestWPM {
			sum.BestWPM = r.WordsPerMinute
			sum.BestPlayer = r.PlayerName
		}
	}
	count := float64(len(records))
	sum.AvgWPM = float64(totalWPM) / count
	sum.AvgScore = float64(totalScore) / count
	return sum
}

// WPMSeries extracts WPM values in record order.
func WPMSeries(records []model.ScoreRecord) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = float64(r.WordsPerMinute)
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// TailSparkline renders at most width of the most recent values.
func TailSparkline(values []float64, width int) string {
	if width > 0 && len(values) > width {
		values = values[len(values)-width:]
	}
	return Sparkline(values)
}
