// Package stats computes the derived aggregates shown on the planner
// dashboards. Everything here is a pure function over the current
// collections, recomputed on every call; nothing is cached or persisted.
package stats

// Bucket is one (label, count) pair of a category breakdown.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// AmountBucket is one (label, sum) pair of a monetary breakdown.
type AmountBucket struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Breakdown counts records per controlled-vocabulary entry by exact
// string match. Values outside the vocabulary land in no bucket, so
// bucket counts can total less than len(items).
func Breakdown[T any](vocab []string, items []T, key func(T) string) []Bucket {
	out := make([]Bucket, len(vocab))
	for i, label := range vocab {
		n := 0
		for _, it := range items {
			if key(it) == label {
				n++
			}
		}
		out[i] = Bucket{Label: label, Count: n}
	}
	return out
}
