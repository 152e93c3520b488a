package stats

import (
	"testing"

	"github.com/hitchly/planner-api/internal/models"
)

func TestTablesUsageOverCapacity(t *testing.T) {
	tables := []models.Table{{Name: "A", Capacity: 8}}
	seats := make([]models.Seat, 9)
	for i := range seats {
		seats[i] = models.Seat{ID: int64(i + 1), Table: "A"}
	}

	got := TablesUsage(tables, seats)
	if len(got) != 1 {
		t.Fatalf("expected 1 usage row, got %d", len(got))
	}

	usage := got[0]
	if usage.Assigned != 9 {
		t.Errorf("expected 9 assigned, got %d", usage.Assigned)
	}
	if !usage.OverCapacity {
		t.Error("expected over-capacity flag for 9 seats at an 8-seat table")
	}
	// Display utilization is clamped at 100%
	if usage.Utilization != 1 {
		t.Errorf("expected utilization clamped to 1, got %v", usage.Utilization)
	}
}

func TestTablesUsageZeroCapacity(t *testing.T) {
	tables := []models.Table{{Name: "B", Capacity: 0}}
	seats := []models.Seat{{ID: 1, Table: "B"}}

	usage := TablesUsage(tables, seats)[0]
	if usage.Utilization != 1 {
		t.Errorf("expected utilization 1 with zero capacity, got %v", usage.Utilization)
	}
	if !usage.OverCapacity {
		t.Error("one seat at a zero-capacity table is over capacity")
	}
}

func TestTablesUsageIgnoresUnmatchedSeats(t *testing.T) {
	tables := []models.Table{{Name: "A", Capacity: 4}}
	seats := []models.Seat{
		{ID: 1, Table: "A"},
		{ID: 2, Table: "Z"}, // no such table; counts nowhere
		{ID: 3, Table: ""},
	}

	usage := TablesUsage(tables, seats)[0]
	if usage.Assigned != 1 {
		t.Errorf("expected 1 assigned seat, got %d", usage.Assigned)
	}
	if usage.OverCapacity {
		t.Error("unexpected over-capacity flag")
	}
}

func TestGiftCounts(t *testing.T) {
	gifts := []models.Gift{
		{ThankYou: "Sent", Category: "Kitchen"},
		{ThankYou: "Drafted", Category: "Kitchen"},
		{ThankYou: "Sent", Category: ""},
	}

	thankYou := ThankYouCounts(gifts)
	if thankYou[0].Count != 0 || thankYou[1].Count != 1 || thankYou[2].Count != 2 {
		t.Errorf("unexpected thank-you counts: %v", thankYou)
	}

	categories := GiftCategoryCounts(gifts)
	if len(categories) != 1 || categories[0] != (Bucket{Label: "Kitchen", Count: 2}) {
		t.Errorf("unexpected category counts: %v", categories)
	}
}
