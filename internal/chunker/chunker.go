// Package chunker splits a document into bounded chunks for sequential practice.
package chunker

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// DefaultMaxLength is the default upper bound on characters per chunk.
const DefaultMaxLength = 300

// ErrEmptyInput is returned when a document has no non-whitespace content.
var ErrEmptyInput = errors.New("no valid content")

// Chunk splits document into chunks of at most maxLength characters.
//
// Whitespace is kept inside chunks. A token longer than maxLength is never
// split and becomes its own chunk. Chunks that contain only whitespace are
// dropped.
func Chunk(document string, maxLength int) ([]string, error) {
	if maxLength <= 0 {
		return nil, fmt.Errorf("max length must be > 0, got %d", maxLength)
	}
	if document == "" {
		return nil, ErrEmptyInput
	}

	var chunks []string
	var current strings.Builder
	currentLen := 0
	flush := func() {
		if current.Len() == 0 {
			return
		}
		if s := current.String(); strings.TrimSpace(s) != "" {
			chunks = append(chunks, s)
		}
		current.Reset()
		currentLen = 0
	}

	for _, tok := range Tokens(document) {
		tokLen := Len(tok)
		if current.Len() > 0 && currentLen+tokLen > maxLength {
			flush()
		}
		current.WriteString(tok)
		currentLen += tokLen
	}
	flush()

	if len(chunks) == 0 {
		return nil, ErrEmptyInput
	}
	return chunks, nil
}

// Tokens splits s into alternating runs of whitespace and non-whitespace.
// Concatenating the result reproduces s.
func Tokens(s string) []string {
	var tokens []string
	start := 0
	inSpace := false
	for i, r := range s {
		space := unicode.IsSpace(r)
		if i == 0 {
			inSpace = space
			continue
		}
		if space != inSpace {
			tokens = append(tokens, s[start:i])
			start = i
			inSpace = space
		}
	}
	if start < len(s) {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

// Len returns the number of user-perceived characters in s.
func Len(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
