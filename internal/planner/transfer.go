package planner

import (
	"encoding/json"
	"slices"

	"github.com/hitchly/planner-api/internal/models"
)

// Document is the export/import envelope: one field per collection, no
// version tag. Pointers distinguish "absent" from "present but empty"
// so imports can merge by presence.
type Document struct {
	Setup      *models.Setup        `json:"setup,omitempty"`
	Guests     *[]models.Guest      `json:"guests,omitempty"`
	Vendors    *models.VendorBook   `json:"vendors,omitempty"`
	Tasks      *[]models.Task       `json:"tasks,omitempty"`
	BudgetPlan *[]models.BudgetLine `json:"budgetPlan,omitempty"`
	Expenses   *[]models.Expense    `json:"expenses,omitempty"`
	Tables     *[]models.Table      `json:"tables,omitempty"`
	Seats      *[]models.Seat       `json:"seats,omitempty"`
	Gifts      *[]models.Gift       `json:"gifts,omitempty"`
}

// Export snapshots every collection into a single document.
func (s *Session) Export() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	setup := s.setup
	guests := slices.Clone(s.guests)
	vendors := s.vendors.Clone()
	tasks := slices.Clone(s.tasks)
	plan := slices.Clone(s.budgetPlan)
	expenses := slices.Clone(s.expenses)
	tables := slices.Clone(s.tables)
	seats := slices.Clone(s.seats)
	gifts := slices.Clone(s.gifts)

	return Document{
		Setup:      &setup,
		Guests:     &guests,
		Vendors:    &vendors,
		Tasks:      &tasks,
		BudgetPlan: &plan,
		Expenses:   &expenses,
		Tables:     &tables,
		Seats:      &seats,
		Gifts:      &gifts,
	}
}

// Import parses a document and replaces each collection that is present
// in it; absent keys leave the current collection untouched. A document
// that fails to parse is rejected whole and nothing is applied.
// Returns the logical names of the collections that were replaced.
func (s *Session) Import(raw []byte) ([]string, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var applied []string
	if doc.Setup != nil {
		s.setup = *doc.Setup
		s.put(slotSetup, s.setup)
		applied = append(applied, "setup")
	}
	if doc.Guests != nil {
		s.guests = *doc.Guests
		s.put(slotGuests, s.guests)
		applied = append(applied, "guests")
	}
	if doc.Vendors != nil {
		s.vendors = *doc.Vendors
		s.put(slotVendors, s.vendors)
		applied = append(applied, "vendors")
	}
	if doc.Tasks != nil {
		s.tasks = *doc.Tasks
		s.put(slotTasks, s.tasks)
		applied = append(applied, "tasks")
	}
	if doc.BudgetPlan != nil {
		s.budgetPlan = *doc.BudgetPlan
		s.put(slotBudgetPlan, s.budgetPlan)
		applied = append(applied, "budgetPlan")
	}
	if doc.Expenses != nil {
		s.expenses = *doc.Expenses
		s.put(slotExpenses, s.expenses)
		applied = append(applied, "expenses")
	}
	if doc.Tables != nil {
		s.tables = *doc.Tables
		s.put(slotTables, s.tables)
		applied = append(applied, "tables")
	}
	if doc.Seats != nil {
		s.seats = *doc.Seats
		s.put(slotSeats, s.seats)
		applied = append(applied, "seats")
	}
	if doc.Gifts != nil {
		s.gifts = *doc.Gifts
		s.put(slotGifts, s.gifts)
		applied = append(applied, "gifts")
	}
	return applied, nil
}
