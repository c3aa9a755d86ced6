package typing

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSessionCatDog(t *testing.T) {
	s := NewSession("cat dog")
	if got := s.WordCount(); got != 2 {
		t.Fatalf("expected 2 words, got %d", got)
	}

	s, ev := s.Type("c")
	if ev != EventNone || s.WordIndex() != 0 {
		t.Fatalf("unexpected transition after 'c': %v %d", ev, s.WordIndex())
	}
	s, ev = s.Type("cat ")
	if ev != EventWordAccepted {
		t.Fatalf("expected word accepted, got %v", ev)
	}
	if s.WordIndex() != 1 || s.Buffer() != "" || len(s.Mismatches()) != 0 {
		t.Fatalf("expected cleared state on word 1, got idx=%d buf=%q mm=%v", s.WordIndex(), s.Buffer(), s.Mismatches())
	}

	s, ev = s.Type("dog")
	if ev != EventNone {
		t.Fatalf("typing without separator must not complete, got %v", ev)
	}
	s, ev = s.Confirm()
	if ev != EventChunkComplete {
		t.Fatalf("expected chunk complete, got %v", ev)
	}
	if s.State() != ChunkComplete {
		t.Fatalf("expected ChunkComplete state, got %v", s.State())
	}
	if s.Completed() != 2 {
		t.Fatalf("expected 2 completed words, got %d", s.Completed())
	}
}

func TestSessionMismatchKeepsWord(t *testing.T) {
	s := NewSession("hello world")
	s, _ = s.Type("hx")
	if mm := s.Mismatches(); len(mm) != 1 || mm[0] != 1 {
		t.Fatalf("expected mismatch at 1, got %v", mm)
	}
	if got := s.AccuracyText(); got != "50.0" {
		t.Fatalf("expected 50.0 accuracy, got %s", got)
	}

	s, ev := s.Type("hx ")
	if ev != EventNone {
		t.Fatalf("wrong word must not be accepted, got %v", ev)
	}
	if s.Buffer() != "hx" {
		t.Fatalf("expected trailing space trimmed, got %q", s.Buffer())
	}
	s, ev = s.Confirm()
	if ev != EventNone || s.WordIndex() != 0 {
		t.Fatalf("confirm on wrong word must not advance")
	}
}

func TestSessionPrefixHasNoMismatches(t *testing.T) {
	s := NewSession("typewriter")
	for _, buf := range []string{"t", "ty", "type", "typewrite"} {
		s, _ = s.Type(buf)
		if len(s.Mismatches()) != 0 {
			t.Fatalf("prefix %q reported mismatches %v", buf, s.Mismatches())
		}
	}
	if got := s.AccuracyText(); got != "100.0" {
		t.Fatalf("expected 100.0, got %s", got)
	}
}

func TestSessionIgnoresInputAfterCompletion(t *testing.T) {
	s := NewSession("one")
	s, ev := s.Type("one ")
	if ev != EventChunkComplete {
		t.Fatalf("expected chunk complete, got %v", ev)
	}
	after, ev := s.Type("x")
	if ev != EventNone || after.Buffer() != "" {
		t.Fatalf("expected input ignored after completion")
	}
	if _, ok := after.CurrentWord(); ok {
		t.Fatalf("expected no current word after completion")
	}
}

func TestSessionIsValue(t *testing.T) {
	s := NewSession("alpha beta")
	next, _ := s.Type("alpha ")
	if s.WordIndex() != 0 {
		t.Fatalf("original session mutated")
	}
	if next.WordIndex() != 1 {
		t.Fatalf("expected next session on word 1")
	}
}

func TestEmptySessionIsComplete(t *testing.T) {
	s := NewSession("   ")
	if s.State() != ChunkComplete {
		t.Fatalf("expected empty chunk to be complete")
	}
	if s.State().String() != "chunk-complete" {
		t.Fatalf("unexpected state name %q", s.State().String())
	}
}
