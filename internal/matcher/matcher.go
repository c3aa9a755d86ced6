// Package matcher validates typed input against a target word.
//
// All functions are pure: callers pass the latest input buffer and target on
// every keystroke and store the result themselves. Strings are compared in
// NFC form, one grapheme cluster at a time.
package matcher

import (
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// TokenizeWords splits a chunk into its words.
func TokenizeWords(chunk string) []string {
	fields := strings.Fields(norm.NFC.String(chunk))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			words = append(words, f)
		}
	}
	return words
}

// Validate returns the offsets where input differs from target.
//
// Only offsets present in input are checked, so a correct prefix of target
// has no mismatches. Characters typed past the end of target are mismatches.
func Validate(input, target string) []int {
	in := Graphemes(input)
	want := Graphemes(target)
	var mismatches []int
	for i, g := range in {
		if i >= len(want) || g != want[i] {
			mismatches = append(mismatches, i)
		}
	}
	return mismatches
}

// IsWordComplete reports whether input matches target exactly, ignoring
// surrounding whitespace.
func IsWordComplete(input, target string) bool {
	return canonical(input) == canonical(target)
}

// Graphemes returns the grapheme clusters of the trimmed NFC form of s.
func Graphemes(s string) []string {
	s = canonical(s)
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Len returns the number of grapheme clusters in the trimmed NFC form of s.
func Len(s string) int {
	return uniseg.GraphemeClusterCount(canonical(s))
}

// Accuracy returns the share of typed characters that match, in percent.
// It is 100 when nothing has been typed.
func Accuracy(inputLen, mismatches int) float64 {
	if inputLen <= 0 {
		return 100
	}
	if mismatches > inputLen {
		mismatches = inputLen
	}
	return float64(inputLen-mismatches) / float64(inputLen) * 100
}

// FormatAccuracy renders an accuracy value with one decimal digit.
func FormatAccuracy(acc float64) string {
	return strconv.FormatFloat(acc, 'f', 1, 64)
}

func canonical(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}
