package render

import (
	"strings"
	"testing"
)

func TestBuildStyledRunesMarksMatches(t *testing.T) {
	runes := buildStyledRunes([]rune("abc"), []rune("axcde"))
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style for mistyped rune")
	}
	if runes[2].s != correctStyle.Render("c") {
		t.Fatalf("expected correct style for third rune")
	}
}

func TestBuildStyledRunesPendingTail(t *testing.T) {
	runes := buildStyledRunes([]rune("ab"), []rune("a"))
	if runes[1].s != pendingStyle.Render("b") {
		t.Fatalf("expected pending style for untyped rune")
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	runes := buildStyledRunes([]rune("a b"), []rune("axb"))
	if runes[1].s != incorrectStyle.Render("•") {
		t.Fatalf("expected dot for wrong space")
	}
}

func plainRunes(text string) []styledRune {
	out := make([]styledRune, 0, len(text))
	for _, r := range text {
		out = append(out, styledRune{s: string(r), width: 1, isSpace: r == ' '})
	}
	return out
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	got := wrapStyledRunes(plainRunes("one two three"), 8)
	if got != "one two\nthree" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapStyledRunesHardBreak(t *testing.T) {
	got := wrapStyledRunes(plainRunes("abcdefgh"), 3)
	if got != "abc\ndef\ngh" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapStyledRunesWideRunes(t *testing.T) {
	runes := []styledRune{{s: "李", width: 2}, {s: "雷", width: 2}, {s: " ", width: 1, isSpace: true}, {s: "a", width: 1}}
	got := wrapStyledRunes(runes, 3)
	if got != "李\n雷\na" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapStyledRunesNoWidth(t *testing.T) {
	if got := wrapStyledRunes(plainRunes("a b"), 0); got != "a b" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestMenuListsItems(t *testing.T) {
	out := Menu("Typing Game Menu", []MenuItem{
		{Label: "Practice Typing"},
		{Label: "Play Typing Game", Sub: []string{"easy", "medium", "hard"}},
		{Label: "Quit"},
	})
	for _, want := range []string{"Typing Game Menu", "1. Practice Typing", "2. Play Typing Game", "- medium", "3. Quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in menu:\n%s", want, out)
		}
	}
}
