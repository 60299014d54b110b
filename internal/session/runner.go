// Package session runs practice and game rounds against a line console.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/verte-zerg/typit/internal/apperr"
	"github.com/verte-zerg/typit/internal/generator"
	"github.com/verte-zerg/typit/internal/model"
	"github.com/verte-zerg/typit/internal/render"
	"github.com/verte-zerg/typit/internal/score"
	"github.com/verte-zerg/typit/internal/stats"
)

// Console reads submitted lines and shows output.
type Console interface {
	ReadLine() (string, error)
	Printf(format string, args ...any)
	Width() int
}

// Corpus loads named line resources.
type Corpus interface {
	Load(name string) ([]string, error)
}

// Clock abstracts time to keep rounds deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Runner drives one session at a time.
type Runner struct {
	corpus  Corpus
	console Console
	clock   Clock
	gen     *generator.Generator
	board   *score.Board
}

// NewRunner constructs a Runner. Game results are appended to board.
func NewRunner(corpus Corpus, console Console, clock Clock, gen *generator.Generator, board *score.Board) *Runner {
	return &Runner{
		corpus:  corpus,
		console: console,
		clock:   clock,
		gen:     gen,
		board:   board,
	}
}

// Practice shows one random paragraph, times a single typed line and reports
// accuracy and WPM. Nothing is recorded.
func (r *Runner) Practice() (model.PracticeResult, error) {
	paragraphs := r.load(model.ParagraphsResource)
	if len(paragraphs) == 0 {
		return model.PracticeResult{}, fmt.Errorf("%w: no valid paragraphs available for typing practice", apperr.ErrNoContent)
	}
	reference := r.gen.Pick(paragraphs)

	r.console.Printf("\n=== Typing Practice ===\n")
	r.console.Printf("Type the following paragraph:\n\n%s\n\n", reference)
	r.console.Printf("Your typing:\n")

	start := r.clock.Now()
	typed, err := r.console.ReadLine()
	if err != nil {
		return model.PracticeResult{}, fmt.Errorf("failed to read input: %w", err)
	}
	elapsed := r.clock.Now().Sub(start)

	result, err := stats.ComputeTypingStats(reference, typed, elapsed)
	if err != nil {
		return model.PracticeResult{}, err
	}
	r.console.Printf("\nAccuracy: %.2f%%\n", result.Accuracy)
	r.console.Printf("Words Per Minute: %.2f WPM\n\n", result.WPM)
	r.console.Printf("%s\n\n", render.Diff(reference, typed, r.console.Width()))

	return model.PracticeResult{
		Reference: reference,
		Typed:     typed,
		Elapsed:   elapsed,
		Stats:     result,
	}, nil
}

// Play validates the level label, asks for the player name and runs a round.
func (r *Runner) Play(ctx context.Context, label string) (model.GameResult, error) {
	level, err := model.ParseDifficulty(label)
	if err != nil {
		return model.GameResult{}, err
	}
	r.printGameHeader(level)
	r.console.Printf("Enter your name: ")
	name, err := r.console.ReadLine()
	if err != nil {
		return model.GameResult{}, fmt.Errorf("failed to read name: %w", err)
	}
	return r.playRound(ctx, level, name)
}

// PlayAs runs a round for a player name that is already known.
func (r *Runner) PlayAs(ctx context.Context, label, name string) (model.GameResult, error) {
	level, err := model.ParseDifficulty(label)
	if err != nil {
		return model.GameResult{}, err
	}
	r.printGameHeader(level)
	return r.playRound(ctx, level, name)
}

func (r *Runner) printGameHeader(level model.Difficulty) {
	r.console.Printf("\n=== Typing Game (Level: %s) ===\n", level)
}

func (r *Runner) playRound(ctx context.Context, level model.Difficulty, name string) (model.GameResult, error) {
	words := r.load(level.Resource())
	if len(words) == 0 {
		return model.GameResult{}, fmt.Errorf("%w: no valid words available for the %s level", apperr.ErrNoContent, level)
	}
	words = r.gen.Shuffle(words)

	r.console.Printf("Press Enter to start...")
	if _, err := r.console.ReadLine(); err != nil {
		return model.GameResult{}, fmt.Errorf("failed to read input: %w", err)
	}

	startedAt := r.clock.Now()
	points := 0
	feedback := make([]model.WordFeedback, 0, len(words))
	for _, word := range words {
		r.console.Printf("\nType the word: %s\n", word)
		typed, err := r.console.ReadLine()
		if err != nil {
			return model.GameResult{}, fmt.Errorf("game aborted: %w", err)
		}
		correct := typed == word
		if correct {
			points++
			r.console.Printf("%s\n", render.Correct.Render("Correct!"))
		} else {
			r.console.Printf("%s\n", render.Wrong.Render("Wrong! The correct word was: "+word))
		}
		feedback = append(feedback, model.WordFeedback{Word: word, Typed: typed, Correct: correct})
	}
	endedAt := r.clock.Now()
	elapsed := endedAt.Unix() - startedAt.Unix()

	rec := model.ScoreRecord{
		PlayerName:     name,
		Score:          points,
		WordsPerMinute: stats.GameWPM(points, elapsed),
		Difficulty:     level,
		Total:          len(words),
		ElapsedSeconds: elapsed,
		PlayedAt:       endedAt,
	}
	if err := r.board.Append(ctx, rec); err != nil {
		r.console.Printf("Unable to save score: %v\n", err)
	}

	r.console.Printf("\nGame Over! Your score: %d/%d\n", rec.Score, rec.Total)
	r.console.Printf("Time taken: %d seconds\n", rec.ElapsedSeconds)
	r.console.Printf("Words per minute: %d\n", rec.WordsPerMinute)

	return model.GameResult{Record: rec, Feedback: feedback}, nil
}

const installHint = "Run `typit corpus` to install the default texts."

// load reports an unavailable resource and continues with no entries.
func (r *Runner) load(name string) []string {
	lines, err := r.corpus.Load(name)
	if err != nil {
		r.console.Printf("%v\n", err)
		if errors.Is(err, apperr.ErrResourceUnavailable) {
			r.console.Printf("%s\n", installHint)
		}
		return nil
	}
	return lines
}
