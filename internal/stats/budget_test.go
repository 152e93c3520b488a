package stats

import (
	"testing"

	"github.com/hitchly/planner-api/internal/models"
)

func TestBudgetSummaryScenario(t *testing.T) {
	plan := []models.BudgetLine{{Category: "Venue", Planned: 6000}}
	expenses := []models.Expense{
		{Type: "Venue", Amount: 500, Paid: true},
		{Type: "Venue", Amount: 300, Paid: false},
	}

	planned := TotalPlanned(plan)
	spent := SpentTotal(expenses)
	leftToPay := LeftToPay(expenses)
	remaining := BudgetRemaining(planned, spent)

	if planned != 6000 {
		t.Errorf("expected totalPlanned 6000, got %v", planned)
	}
	if spent != 500 {
		t.Errorf("expected spent 500, got %v", spent)
	}
	if leftToPay != 300 {
		t.Errorf("expected leftToPay 300, got %v", leftToPay)
	}
	if remaining != 5500 {
		t.Errorf("expected remaining 5500, got %v", remaining)
	}
}

func TestBudgetRemainingFloorsAtZero(t *testing.T) {
	if got := BudgetRemaining(1000, 2500); got != 0 {
		t.Errorf("expected 0 when overspent, got %v", got)
	}
}

func TestPaidByCategoryMatchesExactStrings(t *testing.T) {
	plan := []models.BudgetLine{
		{Category: "Venue", Planned: 6000},
		{Category: "", Planned: 100},
	}
	expenses := []models.Expense{
		{Type: "Venue", Amount: 500, Paid: true},
		{Type: "venue", Amount: 99, Paid: true}, // case differs, no match
		{Type: "Venue", Amount: 300, Paid: false},
	}

	got := PaidByCategory(plan, expenses)
	if got[0].Amount != 500 {
		t.Errorf("expected 500 for Venue, got %v", got[0].Amount)
	}
	if got[1].Label != "(uncategorised)" {
		t.Errorf("expected blank category label to read '(uncategorised)', got %q", got[1].Label)
	}
}

func TestVendorSpendByTypeCountsFinalOnly(t *testing.T) {
	book := models.VendorBook{
		"Photographer": {
			{Final: true, Contract: 1800},
			{Final: false, Contract: 9999},
		},
		"Florist": {},
	}

	got := VendorSpendByType([]string{"Photographer", "Florist", "Cake"}, book)
	if got[0].Amount != 1800 {
		t.Errorf("expected 1800 for Photographer, got %v", got[0].Amount)
	}
	if got[1].Amount != 0 || got[2].Amount != 0 {
		t.Errorf("expected 0 for empty/missing types, got %v %v", got[1].Amount, got[2].Amount)
	}
}

func TestPaidExpenseByType(t *testing.T) {
	expenses := []models.Expense{
		{Type: "Caterer", Amount: 1000, Paid: false},
		{Type: "Caterer", Amount: 250, Paid: true},
		{Type: "Photographer", Amount: 500, Paid: true},
	}

	got := PaidExpenseByType([]string{"Caterer", "Photographer"}, expenses)
	if got[0].Amount != 250 {
		t.Errorf("expected 250 for Caterer, got %v", got[0].Amount)
	}
	if got[1].Amount != 500 {
		t.Errorf("expected 500 for Photographer, got %v", got[1].Amount)
	}
}
