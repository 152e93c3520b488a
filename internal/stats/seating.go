package stats

import "github.com/hitchly/planner-api/internal/models"

// TableUsage is one table's occupancy. Over-booking is allowed; it is
// reported through OverCapacity while Utilization stays clamped to 1
// for display.
type TableUsage struct {
	Name         string  `json:"name"`
	Assigned     int     `json:"assigned"`
	Capacity     int     `json:"capacity"`
	Utilization  float64 `json:"utilization"`
	OverCapacity bool    `json:"overCapacity"`
}

// TablesUsage computes per-table seat counts by matching Seat.Table
// against Table.Name. Seats naming no known table count nowhere.
func TablesUsage(tables []models.Table, seats []models.Seat) []TableUsage {
	out := make([]TableUsage, len(tables))
	for i, t := range tables {
		assigned := 0
		for _, seat := range seats {
			if seat.Table == t.Name {
				assigned++
			}
		}

		capacity := t.Capacity
		if capacity < 1 {
			capacity = 1
		}
		utilization := float64(assigned) / float64(capacity)
		if utilization > 1 {
			utilization = 1
		}

		out[i] = TableUsage{
			Name:         t.Name,
			Assigned:     assigned,
			Capacity:     t.Capacity,
			Utilization:  utilization,
			OverCapacity: assigned > t.Capacity,
		}
	}
	return out
}
