package stats

import (
	"testing"

	"github.com/verte-zerg/typereader/internal/model"
)

func TestTopCharsByFrequency(t *testing.T) {
	aggs := []model.CharAggregate{
		{Char: "b", Correct: 3, Incorrect: 1},
		{Char: "a", Correct: 2, Incorrect: 2},
		{Char: "c", Correct: 1, Incorrect: 0},
	}
	top := TopCharsByFrequency(aggs, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 chars, got %d", len(top))
	}
	if top[0] != "a" || top[1] != "b" {
		t.Fatalf("unexpected order: %v", top)
	}
}

func TestSelectWeakChars(t *testing.T) {
	aggs := []model.CharAggregate{
		{Char: "a", Correct: 9, Incorrect: 1},
		{Char: "b", Correct: 1, Incorrect: 1},
		{Char: "c", Correct: 5, Incorrect: 0},
		{Char: "d", Correct: 3, Incorrect: 1},
	}
	weak := SelectWeakChars(aggs, 2)
	if len(weak) != 2 || weak[0] != "b" || weak[1] != "d" {
		t.Fatalf("unexpected weak chars: %v", weak)
	}
	if all := SelectWeakChars(aggs, 0); len(all) != 3 {
		t.Fatalf("expected every char with mistakes, got %v", all)
	}
}
