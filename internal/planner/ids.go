package planner

// nextID assigns ids monotonically above everything already in the
// collection, so ids stay unique across restarts and imports.
func nextID[T any](items []T, id func(T) int64) int64 {
	max := int64(0)
	for _, it := range items {
		if v := id(it); v > max {
			max = v
		}
	}
	return max + 1
}
