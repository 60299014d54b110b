// Package console provides blocking line input and plain output for the
// interactive game.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	clearSequence = "\x1b[H\x1b[2J"
	fallbackWidth = 80
)

// Console reads whole lines from in and writes to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Console over the given streams.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// ReadLine blocks until a full line is read and returns it without the line
// terminator. A final unterminated line is returned without error; io.EOF is
// returned only when nothing was read.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

// Printf writes formatted output. Write errors are ignored.
func (c *Console) Printf(format string, args ...any) {
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		// Best-effort console output.
		_ = err
	}
}

// Writer exposes the output stream for table renderers.
func (c *Console) Writer() io.Writer {
	return c.out
}

// Clear wipes the screen when output is a terminal.
func (c *Console) Clear() {
	if !c.IsTerminal() {
		return
	}
	c.Printf("%s", clearSequence)
}

// IsTerminal reports whether output goes to a terminal.
func (c *Console) IsTerminal() bool {
	f, ok := c.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Width returns the output terminal width, or a fallback for pipes.
func (c *Console) Width() int {
	f, ok := c.out.(*os.File)
	if !ok {
		return fallbackWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
