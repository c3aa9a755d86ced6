package stats

import (
	"sort"

	"github.com/verte-zerg/typereader/internal/model"
)

// TopCharsByFrequency returns the top N characters by total keystrokes.
func TopCharsByFrequency(aggs []model.CharAggregate, n int) []string {
	if n <= 0 || len(aggs) == 0 {
		return nil
	}
	items := make([]model.CharAggregate, len(aggs))
	copy(items, aggs)
	sort.Slice(items, func(i, j int) bool {
		ti := items[i].Correct + items[i].Incorrect
		tj := items[j].Correct + items[j].Incorrect
		if ti == tj {
			return items[i].Char < items[j].Char
		}
		return ti > tj
	})
	n = min(n, len(items))
	out := make([]string, 0, n)
	for _, it := range items[:n] {
		out = append(out, it.Char)
	}
	return out
}
