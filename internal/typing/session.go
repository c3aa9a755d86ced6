// Package typing holds the per-chunk typing state machine and the book
// controller that walks a document chunk by chunk.
package typing

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/verte-zerg/typereader/internal/matcher"
)

// State is the phase of a typing session.
type State int

const (
	// AwaitingInput waits for the current word to be typed.
	AwaitingInput State = iota
	// ChunkComplete is terminal: every word of the chunk was accepted.
	ChunkComplete
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting-input"
	case ChunkComplete:
		return "chunk-complete"
	default:
		return "unknown"
	}
}

// Event reports what a transition did.
type Event int

const (
	// EventNone means the session stayed on the same word.
	EventNone Event = iota
	// EventWordAccepted means the current word matched and the next one is active.
	EventWordAccepted
	// EventChunkComplete means the last word matched.
	EventChunkComplete
)

// Session is the typing state for one chunk. It is a value: transitions
// return a new Session and never modify the receiver.
type Session struct {
	words      []string
	wordIndex  int
	input      string
	mismatches []int
	state      State
}

// NewSession starts a session on the words of chunk.
func NewSession(chunk string) Session {
	words := matcher.TokenizeWords(chunk)
	s := Session{words: words}
	if len(words) == 0 {
		s.state = ChunkComplete
	}
	return s
}

// Words returns the words of the chunk.
func (s Session) Words() []string { return s.words }

// WordIndex returns the index of the active word.
func (s Session) WordIndex() int { return s.wordIndex }

// WordCount returns the number of words in the chunk.
func (s Session) WordCount() int { return len(s.words) }

// Buffer returns the normalized input buffer.
func (s Session) Buffer() string { return s.input }

// Mismatches returns the mismatch offsets for the active word.
func (s Session) Mismatches() []int { return s.mismatches }

// State returns the session phase.
func (s Session) State() State { return s.state }

// CurrentWord returns the active word, or false once the chunk is complete.
func (s Session) CurrentWord() (string, bool) {
	if s.state != AwaitingInput || s.wordIndex >= len(s.words) {
		return "", false
	}
	return s.words[s.wordIndex], true
}

// Completed returns the number of accepted words.
func (s Session) Completed() int {
	if s.state == ChunkComplete {
		return len(s.words)
	}
	return s.wordIndex
}

// Type handles a change of the raw input buffer. A trailing space asks for
// the word to be accepted; otherwise mismatches are recomputed.
func (s Session) Type(buffer string) (Session, Event) {
	target, ok := s.CurrentWord()
	if !ok {
		return s, EventNone
	}
	next := s
	next.input = strings.TrimSpace(norm.NFC.String(buffer))
	if strings.HasSuffix(buffer, " ") && matcher.IsWordComplete(next.input, target) {
		return next.accept()
	}
	next.mismatches = matcher.Validate(next.input, target)
	return next, EventNone
}

// Confirm runs the completion check on the current buffer (Enter key).
func (s Session) Confirm() (Session, Event) {
	target, ok := s.CurrentWord()
	if !ok {
		return s, EventNone
	}
	if !matcher.IsWordComplete(s.input, target) {
		return s, EventNone
	}
	return s.accept()
}

// Accuracy returns the accuracy of the current buffer in percent.
func (s Session) Accuracy() float64 {
	return matcher.Accuracy(matcher.Len(s.input), len(s.mismatches))
}

// AccuracyText returns Accuracy with one decimal digit.
func (s Session) AccuracyText() string {
	return matcher.FormatAccuracy(s.Accuracy())
}

func (s Session) accept() (Session, Event) {
	s.input = ""
	s.mismatches = nil
	if s.wordIndex+1 >= len(s.words) {
		s.state = ChunkComplete
		return s, EventChunkComplete
	}
	s.wordIndex++
	return s, EventWordAccepted
}
