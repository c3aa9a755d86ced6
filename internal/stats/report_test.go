package stats

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/typereader/internal/model"
	"github.com/verte-zerg/typereader/internal/store"
)

func TestBuildReport(t *testing.T) {
	st, err := store.Open()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		end := start.Add(30 * time.Second)
		res := model.ChunkResult{
			Book:       "book.txt",
			ChunkIndex: i,
			StartedAt:  start,
			EndedAt:    end,
			Words:      10,
			Correct:    40 + i*10,
			Incorrect:  1,
			DurationMs: end.Sub(start).Milliseconds(),
		}
		chars := []model.CharStats{
			{Char: "a", Correct: 5, Incorrect: 0},
			{Char: "b", Correct: 4, Incorrect: 1},
			{Char: " ", Correct: 9, Incorrect: 0},
		}
		if _, err := st.InsertChunkResult(ctx, res, chars); err != nil {
			t.Fatalf("insert chunk result: %v", err)
		}
	}

	report, err := BuildReport(ctx, st)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(report.Results))
	}
	if len(report.Weak) != 1 || report.Weak[0] != "b" {
		t.Fatalf("unexpected weak chars: %v", report.Weak)
	}
	if len(report.Top) == 0 || report.Top[0] != " " {
		t.Fatalf("unexpected top chars: %v", report.Top)
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, 60); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Chunks: 3", "Words: 30", "Time: 1m30s", "WPM by chunk: ", "Weakest characters: b", "Most typed: <space>", "Per-Character"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	if err := (Report{}).Render(&buf, 0); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No chunks completed." {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
