package stats

import (
	"sort"

	"github.com/hitchly/planner-api/internal/models"
)

// ThankYouCounts buckets gifts over the fixed thank-you states.
func ThankYouCounts(gifts []models.Gift) []Bucket {
	return Breakdown(models.ThankYouStates, gifts, func(g models.Gift) string { return g.ThankYou })
}

// GiftCategoryCounts tallies gifts per non-empty category, sorted by
// category name for a stable chart order.
func GiftCategoryCounts(gifts []models.Gift) []Bucket {
	counts := map[string]int{}
	for _, g := range gifts {
		if g.Category != "" {
			counts[g.Category]++
		}
	}
	out := make([]Bucket, 0, len(counts))
	for category, n := range counts {
		out = append(out, Bucket{Label: category, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
