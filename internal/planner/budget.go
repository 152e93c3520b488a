package planner

import (
	"slices"

	"github.com/hitchly/planner-api/internal/models"
)

// BudgetPlan returns a copy of the planned budget lines.
func (s *Session) BudgetPlan() []models.BudgetLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.budgetPlan)
}

// AddBudgetLine appends a blank plan line.
func (s *Session) AddBudgetLine() models.BudgetLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := models.BudgetLine{}
	s.budgetPlan = append(slices.Clone(s.budgetPlan), line)
	s.put(slotBudgetPlan, s.budgetPlan)
	return line
}

// UpdateBudgetLine shallow-merges patch into the line at index.
// An out-of-range index leaves the collection untouched.
func (s *Session) UpdateBudgetLine(index int, patch models.BudgetLinePatch) (models.BudgetLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.budgetPlan) {
		return models.BudgetLine{}, false
	}

	out := slices.Clone(s.budgetPlan)
	out[index] = patch.Apply(out[index])
	s.budgetPlan = out
	s.put(slotBudgetPlan, s.budgetPlan)
	return out[index], true
}

// RemoveBudgetLine drops the line at index; out-of-range is a no-op.
func (s *Session) RemoveBudgetLine(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.budgetPlan) {
		return false
	}
	s.budgetPlan = slices.Delete(slices.Clone(s.budgetPlan), index, index+1)
	s.put(slotBudgetPlan, s.budgetPlan)
	return true
}

// Expenses returns a copy of the expense list.
func (s *Session) Expenses() []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.expenses)
}

// AddExpense appends a blank expense dated today.
func (s *Session) AddExpense() models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := models.NewExpense()
	s.expenses = append(slices.Clone(s.expenses), e)
	s.put(slotExpenses, s.expenses)
	return e
}

// UpdateExpense shallow-merges patch into the expense at index.
func (s *Session) UpdateExpense(index int, patch models.ExpensePatch) (models.Expense, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.expenses) {
		return models.Expense{}, false
	}

	out := slices.Clone(s.expenses)
	out[index] = patch.Apply(out[index])
	s.expenses = out
	s.put(slotExpenses, s.expenses)
	return out[index], true
}

// RemoveExpense drops the expense at index; out-of-range is a no-op.
func (s *Session) RemoveExpense(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.expenses) {
		return false
	}
	s.expenses = slices.Delete(slices.Clone(s.expenses), index, index+1)
	s.put(slotExpenses, s.expenses)
	return true
}
