package stats

import "github.com/hitchly/planner-api/internal/models"

// TotalPlanned sums the planned amount over every budget line.
func TotalPlanned(plan []models.BudgetLine) float64 {
	total := 0.0
	for _, line := range plan {
		total += line.Planned.Float64()
	}
	return total
}

// SpentTotal sums paid expenses.
func SpentTotal(expenses []models.Expense) float64 {
	total := 0.0
	for _, e := range expenses {
		if e.Paid {
			total += e.Amount.Float64()
		}
	}
	return total
}

// LeftToPay sums unpaid expenses.
func LeftToPay(expenses []models.Expense) float64 {
	total := 0.0
	for _, e := range expenses {
		if !e.Paid {
			total += e.Amount.Float64()
		}
	}
	return total
}

// BudgetRemaining is planned minus spent, floored at zero for display.
func BudgetRemaining(planned, spent float64) float64 {
	if remaining := planned - spent; remaining > 0 {
		return remaining
	}
	return 0
}

// PaidByCategory sums paid expenses per budget line, matching
// Expense.Type against BudgetLine.Category by exact string equality.
// Expenses whose type matches no line are excluded.
func PaidByCategory(plan []models.BudgetLine, expenses []models.Expense) []AmountBucket {
	out := make([]AmountBucket, len(plan))
	for i, line := range plan {
		label := line.Category
		if label == "" {
			label = "(uncategorised)"
		}
		sum := 0.0
		for _, e := range expenses {
			if e.Paid && e.Type == line.Category {
				sum += e.Amount.Float64()
			}
		}
		out[i] = AmountBucket{Label: label, Amount: sum}
	}
	return out
}

// VendorSpendByType sums contracted amounts of finalised vendor entries
// per vendor type.
func VendorSpendByType(vendorTypes []string, book models.VendorBook) []AmountBucket {
	out := make([]AmountBucket, len(vendorTypes))
	for i, vt := range vendorTypes {
		sum := 0.0
		for _, entry := range book[vt] {
			if entry.Final {
				sum += entry.Contract.Float64()
			}
		}
		out[i] = AmountBucket{Label: vt, Amount: sum}
	}
	return out
}

// PaidExpenseByType sums paid expenses per vendor type, matched by
// exact string equality on Expense.Type.
func PaidExpenseByType(vendorTypes []string, expenses []models.Expense) []AmountBucket {
	out := make([]AmountBucket, len(vendorTypes))
	for i, vt := range vendorTypes {
		sum := 0.0
		for _, e := range expenses {
			if e.Paid && e.Type == vt {
				sum += e.Amount.Float64()
			}
		}
		out[i] = AmountBucket{Label: vt, Amount: sum}
	}
	return out
}
