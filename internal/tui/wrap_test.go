package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/typereader/internal/theme"
	"github.com/verte-zerg/typereader/internal/typing"
)

var testStyles = theme.Default().Styles()

func TestBuildStyledWordsActiveWord(t *testing.T) {
	s := typing.NewSession("ab cd")
	s, _ = s.Type("a")

	runes := buildStyledWords(s, testStyles)
	if len(runes) != 5 {
		t.Fatalf("expected 5 cells, got %d", len(runes))
	}
	if runes[0].s != testStyles.Correct.Render("a") {
		t.Fatalf("expected correct style for typed rune")
	}
	if runes[1].s != testStyles.Current.Underline(true).Render("b") {
		t.Fatalf("expected cursor style for next rune of active word")
	}
	if !runes[2].isSpace {
		t.Fatalf("expected separator between words")
	}
	if runes[3].s != testStyles.Text.Render("c") {
		t.Fatalf("expected text style for pending word")
	}
}

func TestBuildStyledWordsMismatch(t *testing.T) {
	s := typing.NewSession("ab")
	s, _ = s.Type("ax")

	runes := buildStyledWords(s, testStyles)
	if runes[1].s != testStyles.Incorrect.Render("b") {
		t.Fatalf("expected incorrect style for mistyped rune")
	}
}

func TestBuildStyledWordsAcceptedWords(t *testing.T) {
	s := typing.NewSession("ab cd")
	s, _ = s.Type("ab ")

	runes := buildStyledWords(s, testStyles)
	if runes[0].s != testStyles.Accepted.Render("a") || runes[1].s != testStyles.Accepted.Render("b") {
		t.Fatalf("expected accent style for accepted word")
	}
	if runes[3].s != testStyles.Current.Underline(true).Render("c") {
		t.Fatalf("expected cursor on first rune of new active word")
	}
}

func TestBuildStyledWordsWideGrapheme(t *testing.T) {
	s := typing.NewSession("日本")
	runes := buildStyledWords(s, testStyles)
	if len(runes) != 2 || runes[0].width != 2 {
		t.Fatalf("expected two double-width cells, got %+v", runes)
	}
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	runes := plainRunes("one two three")
	got := wrapStyledRunes(runes, 7)
	want := "one two\nthree"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrapStyledRunesLongWord(t *testing.T) {
	runes := plainRunes("abcdefgh")
	got := wrapStyledRunes(runes, 3)
	if got != "abc\ndef\ngh" {
		t.Fatalf("unexpected hard wrap %q", got)
	}
}

func TestWrapStyledRunesNoWidth(t *testing.T) {
	runes := plainRunes("a b")
	if got := wrapStyledRunes(runes, 0); got != "a b" {
		t.Fatalf("expected unwrapped text, got %q", got)
	}
}

func plainRunes(s string) []styledRune {
	out := make([]styledRune, 0, len(s))
	for _, r := range s {
		out = append(out, styledRune{s: string(r), width: 1, isSpace: r == ' '})
	}
	return out
}

func TestRenderStyledRunes(t *testing.T) {
	if got := renderStyledRunes(plainRunes("x y")); !strings.Contains(got, "x y") {
		t.Fatalf("unexpected render %q", got)
	}
}
