package stats

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/typereader/internal/model"
	"github.com/verte-zerg/typereader/internal/store"
)

const (
	weakCharCount  = 8
	topCharCount   = 10
	curveWindow    = 3
	sparkLabel     = "WPM by chunk: "
	minSparkWidth  = 10
	fallbackWidth  = 80
	weakCharHeader = "Weakest characters: "
)

// Report contains precomputed data for the end-of-run summary.
type Report struct {
	Results  []model.ChunkAggregate
	CharAggs []model.CharAggregate
	Weak     []string
	Top      []string
}

// BuildReport loads the run statistics from the store.
func BuildReport(ctx context.Context, st *store.Store) (Report, error) {
	results, err := st.ListChunkResults(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to list chunk results: %w", err)
	}
	aggs, err := st.ListCharAggregates(ctx, nil)
	if err != nil {
		return Report{}, fmt.Errorf("failed to aggregate char stats: %w", err)
	}
	return Report{
		Results:  results,
		CharAggs: aggs,
		Weak:     SelectWeakChars(aggs, weakCharCount),
		Top:      TopCharsByFrequency(aggs, topCharCount),
	}, nil
}

// Empty reports whether no chunk was completed.
func (r Report) Empty() bool {
	return len(r.Results) == 0
}

// Render writes the report. width is the terminal width, or 0 if unknown.
func (r Report) Render(w io.Writer, width int) error {
	if err := RenderSummary(w, r.Results); err != nil {
		return err
	}
	if r.Empty() {
		return nil
	}
	if width <= 0 {
		width = fallbackWidth
	}

	wpms := make([]float64, len(r.Results))
	for i, res := range r.Results {
		wpms[i], _, _ = ChunkMetrics(res.Correct, res.Incorrect, res.DurationMs)
	}
	sparkWidth := max(minSparkWidth, width-len(sparkLabel))
	if _, err := fmt.Fprintln(w, sparkLabel+Sparkline(MovingAverage(wpms, curveWindow), sparkWidth)); err != nil {
		return err
	}
	if len(r.Weak) > 0 {
		if _, err := fmt.Fprintln(w, weakCharHeader+strings.Join(labels(r.Weak), " ")); err != nil {
			return err
		}
	}
	if len(r.Top) > 0 {
		if _, err := fmt.Fprintln(w, "Most typed: "+strings.Join(labels(r.Top), " ")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return RenderCharTable(w, r.CharAggs)
}

func labels(chars []string) []string {
	out := make([]string, len(chars))
	for i, ch := range chars {
		out[i] = charLabel(ch)
	}
	return out
}
