package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/typit/internal/apperr"
	"github.com/verte-zerg/typit/internal/generator"
	"github.com/verte-zerg/typit/internal/score"
	"github.com/verte-zerg/typit/internal/session"
)

type scriptConsole struct {
	inputs  []string
	out     strings.Builder
	cleared int
}

func (c *scriptConsole) ReadLine() (string, error) {
	if len(c.inputs) == 0 {
		return "", io.EOF
	}
	line := c.inputs[0]
	c.inputs = c.inputs[1:]
	return line, nil
}

func (c *scriptConsole) Printf(format string, args ...any) {
	fmt.Fprintf(&c.out, format, args...)
}

func (c *scriptConsole) Width() int        { return 0 }
func (c *scriptConsole) Clear()            { c.cleared++ }
func (c *scriptConsole) Writer() io.Writer { return &c.out }

type tickClock struct{ now time.Time }

func (c *tickClock) Now() time.Time {
	c.now = c.now.Add(5 * time.Second)
	return c.now
}

type mapCorpus map[string][]string

func (m mapCorpus) Load(name string) ([]string, error) {
	return m[name], nil
}

func newController(inputs ...string) (*Controller, *scriptConsole, *score.Board) {
	console := &scriptConsole{inputs: inputs}
	board := score.NewBoard()
	corpus := mapCorpus{
		"words.txt": {"hello world"},
		"easy.txt":  {"cat"},
	}
	runner := session.NewRunner(corpus, console, &tickClock{}, generator.NewSeeded(1), board)
	return New(console, runner, board), console, board
}

func TestParseChoice(t *testing.T) {
	for line, want := range map[string]int{"1": 1, " 2 ": 2, "4": 4} {
		got, err := ParseChoice(line)
		if err != nil || got != want {
			t.Fatalf("ParseChoice(%q) = %d, %v", line, got, err)
		}
	}
	for _, line := range []string{"0", "5", "", "two", "-1"} {
		if _, err := ParseChoice(line); !errors.Is(err, apperr.ErrInvalidMenuChoice) {
			t.Fatalf("ParseChoice(%q): expected ErrInvalidMenuChoice, got %v", line, err)
		}
	}
}

func TestRunQuit(t *testing.T) {
	c, console, _ := newController("4")
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	out := console.out.String()
	if !strings.Contains(out, "Typing Game Menu") || !strings.Contains(out, "Goodbye") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if console.cleared != 1 {
		t.Fatalf("expected screen clear before menu, got %d", console.cleared)
	}
}

func TestRunInvalidChoiceContinues(t *testing.T) {
	c, console, _ := newController("9", "", "4")
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	out := console.out.String()
	if !strings.Contains(out, "Invalid choice. Please enter a number between 1 and 4.") {
		t.Fatalf("expected invalid choice report:\n%s", out)
	}
	if strings.Count(out, "Typing Game Menu") != 2 {
		t.Fatalf("expected menu to be drawn twice")
	}
}

func TestRunGameThenScoreCard(t *testing.T) {
	c, console, board := newController(
		"2", "easy", "ann", "", "cat", "",
		"3", "",
		"4",
	)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if board.Len() != 1 {
		t.Fatalf("expected one record, got %d", board.Len())
	}
	out := console.out.String()
	if !strings.Contains(out, "=== Score Card ===") || !strings.Contains(out, "ann") {
		t.Fatalf("expected score card with player:\n%s", out)
	}
}

func TestRunInvalidDifficultyReported(t *testing.T) {
	c, console, board := newController("2", "impossible", "", "4")
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if board.Len() != 0 {
		t.Fatalf("expected no records")
	}
	if !strings.Contains(console.out.String(), "invalid difficulty level") {
		t.Fatalf("expected difficulty error report:\n%s", console.out.String())
	}
}

func TestRunPracticeAndEOF(t *testing.T) {
	c, console, board := newController("1", "hello world")
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("expected EOF to end the loop cleanly, got %v", err)
	}
	if !strings.Contains(console.out.String(), "Accuracy: 100.00%") {
		t.Fatalf("expected practice stats:\n%s", console.out.String())
	}
	if board.Len() != 0 {
		t.Fatalf("practice must not record")
	}
}
