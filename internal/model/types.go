// Package model defines shared data structures.
package model

import (
	"fmt"
	"time"

	"github.com/verte-zerg/typit/internal/apperr"
)

// Difficulty selects the word corpus for a game round.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the supported levels in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty matches a label case-sensitively against the known levels.
func ParseDifficulty(label string) (Difficulty, error) {
	for _, d := range Difficulties {
		if string(d) == label {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected easy, medium or hard)", apperr.ErrInvalidDifficulty, label)
}

// Resource returns the corpus file name for the level.
func (d Difficulty) Resource() string {
	return string(d) + ".txt"
}

// ParagraphsResource is the corpus file used by practice mode.
const ParagraphsResource = "words.txt"

// Config defines resolved runtime settings.
type Config struct {
	CorpusDir     string
	ScorecardPath string
	DBPath        string
	Player        string
}

// TypingStats is the outcome of a practice attempt.
type TypingStats struct {
	Accuracy float64
	WPM      float64
}

// ScoreRecord captures one completed game round.
type ScoreRecord struct {
	PlayerName     string
	Score          int
	WordsPerMinute int

	Difficulty     Difficulty
	Total          int
	ElapsedSeconds int64
	PlayedAt       time.Time
}

// WordFeedback is the verdict for a single word of a game round.
type WordFeedback struct {
	Word    string
	Typed   string
	Correct bool
}

// GameResult is returned by a completed game round.
type GameResult struct {
	Record   ScoreRecord
	Feedback []WordFeedback
}

// PracticeResult is returned by a completed practice attempt.
type PracticeResult struct {
	Reference string
	Typed     string
	Elapsed   time.Duration
	Stats     TypingStats
}

// HistoryFilter narrows persisted score history.
type HistoryFilter struct {
	Player     string
	Difficulty Difficulty
	Since      *time.Time
	Last       int
}
