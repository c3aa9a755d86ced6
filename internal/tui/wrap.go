package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typereader/internal/matcher"
	"github.com/verte-zerg/typereader/internal/theme"
	"github.com/verte-zerg/typereader/internal/typing"
)

// styledRune is one rendered grapheme cluster.
type styledRune struct {
	s       string
	width   int
	isSpace bool
}

func newStyledRune(g string, style lipgloss.Style) styledRune {
	return styledRune{s: style.Render(g), width: runewidth.StringWidth(g)}
}

// buildStyledWords renders the chunk: accepted words in the accent color, the
// active word character by character, and the rest as plain text.
func buildStyledWords(session typing.Session, styles theme.Styles) []styledRune {
	words := session.Words()
	active := session.WordIndex()
	if session.State() == typing.ChunkComplete {
		active = len(words)
	}
	out := make([]styledRune, 0, len(words)*6)
	for i, word := range words {
		if i > 0 {
			out = append(out, styledRune{s: " ", width: 1, isSpace: true})
		}
		switch {
		case i < active:
			out = appendWord(out, word, styles.Accepted)
		case i == active:
			out = appendActiveWord(out, word, session.Buffer(), session.Mismatches(), styles)
		default:
			out = appendWord(out, word, styles.Text)
		}
	}
	return out
}

func appendWord(out []styledRune, word string, style lipgloss.Style) []styledRune {
	for _, g := range matcher.Graphemes(word) {
		out = append(out, newStyledRune(g, style))
	}
	return out
}

func appendActiveWord(out []styledRune, word, input string, mismatches []int, styles theme.Styles) []styledRune {
	typed := matcher.Len(input)
	wrong := make(map[int]struct{}, len(mismatches))
	for _, idx := range mismatches {
		wrong[idx] = struct{}{}
	}
	for i, g := range matcher.Graphemes(word) {
		style := styles.Current
		switch {
		case i < typed:
			if _, ok := wrong[i]; ok {
				style = styles.Incorrect
			} else {
				style = styles.Correct
			}
		case i == typed:
			style = styles.Current.Underline(true)
		}
		out = append(out, newStyledRune(g, style))
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

func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			switch {
			case item.isSpace:
				// A space at the edge becomes the line break.
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
				i++
			case lastSpaceIdx >= 0:
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			default:
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
