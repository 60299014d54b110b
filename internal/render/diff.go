// Package render draws console output: the menu box and practice diffs.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Underline(true)
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))

	// Correct and Wrong style per-word game feedback.
	Correct = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")).Bold(true)
	Wrong   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// Diff renders reference with each position colored by the typed attempt and
// wraps it to width columns. width <= 0 disables wrapping.
func Diff(reference, typed string, width int) string {
	return wrapStyledRunes(buildStyledRunes([]rune(reference), []rune(typed)), width)
}

func buildStyledRunes(targetRunes, inputRunes []rune) []styledRune {
	out := make([]styledRune, 0, len(targetRunes))
	for i, target := range targetRunes {
		displayed := target
		style := pendingStyle
		if i < len(inputRunes) {
			switch {
			case target == ' ' && inputRunes[i] != ' ':
				displayed = '•'
				style = incorrectStyle
			case inputRunes[i] == target:
				style = correctStyle
			default:
				style = incorrectStyle
			}
		}
		out = append(out, styledRune{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: target == ' ',
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes lays words out greedily on lines of at most width columns.
// A space that ends a line is dropped. Words wider than a line are split.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	words, seps := splitWords(runes)

	var lines []string
	var line []styledRune
	used := 0
	flush := func() {
		lines = append(lines, renderStyledRunes(line))
		line = nil
		used = 0
	}

	for i, word := range words {
		size := widthOf(word)
		if i > 0 {
			sep := seps[i-1]
			if used+sep.width+size <= width {
				line = append(line, sep)
				used += sep.width
			} else if len(line) > 0 {
				flush()
			}
		}
		for used+size > width {
			n := fitCount(word, width-used)
			if n == 0 {
				if len(line) > 0 {
					flush()
					continue
				}
				n = 1
			}
			line = append(line, word[:n]...)
			flush()
			word = word[n:]
			size = widthOf(word)
		}
		line = append(line, word...)
		used += size
	}
	flush()
	return strings.Join(lines, "\n")
}

// splitWords cuts runes at every space. seps[i] sits between words[i] and words[i+1].
func splitWords(runes []styledRune) ([][]styledRune, []styledRune) {
	words := [][]styledRune{nil}
	var seps []styledRune
	for _, item := range runes {
		if item.isSpace {
			seps = append(seps, item)
			words = append(words, nil)
			continue
		}
		last := len(words) - 1
		words[last] = append(words[last], item)
	}
	return words, seps
}

func widthOf(runes []styledRune) int {
	total := 0
	for _, item := range runes {
		total += item.width
	}
	return total
}

// fitCount returns how many leading runes fit in avail columns.
func fitCount(runes []styledRune, avail int) int {
	used := 0
	for i, item := range runes {
		if used+item.width > avail {
			return i
		}
		used += item.width
	}
	return len(runes)
}
