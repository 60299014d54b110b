// Package menu implements the numbered main menu loop.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/verte-zerg/typit/internal/apperr"
	"github.com/verte-zerg/typit/internal/model"
	"github.com/verte-zerg/typit/internal/render"
	"github.com/verte-zerg/typit/internal/score"
	"github.com/verte-zerg/typit/internal/session"
	"github.com/verte-zerg/typit/internal/stats"
)

const (
	choicePractice = iota + 1
	choicePlay
	choiceScoreCard
	choiceQuit
)

// Console is the line console the menu draws on.
type Console interface {
	session.Console
	Clear()
	Writer() io.Writer
}

// Controller dispatches menu choices to the session runner.
type Controller struct {
	console Console
	runner  *session.Runner
	board   *score.Board
}

// New returns a Controller.
func New(console Console, runner *session.Runner, board *score.Board) *Controller {
	return &Controller{console: console, runner: runner, board: board}
}

// Run loops until the user quits or input ends. Session errors are reported
// and never end the loop.
func (c *Controller) Run(ctx context.Context) error {
	for {
		c.console.Clear()
		c.console.Printf("\n\n%s\n", render.Menu("Typing Game Menu", menuItems()))
		c.console.Printf("Enter your choice (1-%d): ", choiceQuit)
		line, err := c.console.ReadLine()
		if err != nil {
			return endOfInput(err)
		}

		choice, err := ParseChoice(line)
		if err != nil {
			c.console.Printf("Invalid choice. Please enter a number between 1 and %d.\n", choiceQuit)
		} else {
			if choice == choiceQuit {
				c.console.Printf("Exiting the Game!!! Goodbye!\n")
				return nil
			}
			if err := c.dispatch(ctx, choice); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				c.console.Printf("%v\n", err)
			}
		}

		c.console.Printf("Press Enter to continue...")
		if _, err := c.console.ReadLine(); err != nil {
			return endOfInput(err)
		}
	}
}

func (c *Controller) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case choicePractice:
		_, err := c.runner.Practice()
		return err
	case choicePlay:
		c.console.Printf("Select difficulty level (easy, medium, hard): ")
		label, err := c.console.ReadLine()
		if err != nil {
			return err
		}
		_, err = c.runner.Play(ctx, label)
		return err
	case choiceScoreCard:
		return stats.RenderScoreCard(c.console.Writer(), c.board.List())
	}
	return nil
}

// ParseChoice converts a menu line into a choice number.
func ParseChoice(line string) (int, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < choicePractice || choice > choiceQuit {
		return 0, fmt.Errorf("%w: %q", apperr.ErrInvalidMenuChoice, line)
	}
	return choice, nil
}

func menuItems() []render.MenuItem {
	levels := make([]string, 0, len(model.Difficulties))
	for _, d := range model.Difficulties {
		levels = append(levels, "*"+string(d))
	}
	return []render.MenuItem{
		{Label: "Practice Typing"},
		{Label: "Play Typing Game", Sub: levels},
		{Label: "Score Card"},
		{Label: "Quit"},
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
