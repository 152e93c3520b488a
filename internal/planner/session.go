package planner

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/hitchly/planner-api/internal/models"
	"github.com/hitchly/planner-api/internal/store"
)

// Slot keys, one per persisted collection plus the selected view tab.
const (
	slotTab        = "wp_tab"
	slotSetup      = "wp_setup"
	slotGuests     = "wp_guests"
	slotVendors    = "wp_vendors"
	slotTasks      = "wp_tasks"
	slotBudgetPlan = "wp_budgetPlan"
	slotExpenses   = "wp_expenses"
	slotTables     = "wp_tables"
	slotSeats      = "wp_seats"
	slotGifts      = "wp_gifts"
)

// Session owns the nine collections for the running planner. All reads
// and writes go through its accessors and mutators; every mutation
// rewrites the owning collection's slot. Handlers run concurrently;
// a single RWMutex serializes mutations across all collections.
type Session struct {
	mu    sync.RWMutex
	store *store.Store

	tab        string
	setup      models.Setup
	guests     []models.Guest
	vendors    models.VendorBook
	tasks      []models.Task
	budgetPlan []models.BudgetLine
	expenses   []models.Expense
	tables     []models.Table
	seats      []models.Seat
	gifts      []models.Gift
}

// Open loads every slot, substituting defaults for missing or corrupt
// values. With seedDemo set, empty slots start with the demo records
// instead of empty collections.
func Open(st *store.Store, seedDemo bool) *Session {
	s := &Session{store: st}

	defSetup := models.DefaultSetup()
	s.setup = store.Load(st, slotSetup, defSetup)
	s.tab = store.Load(st, slotTab, "dashboard")
	s.tasks = store.Load(st, slotTasks, []models.Task{})
	s.seats = store.Load(st, slotSeats, []models.Seat{})
	s.gifts = store.Load(st, slotGifts, []models.Gift{})

	if seedDemo {
		s.guests = store.Load(st, slotGuests, models.SeedGuests())
		s.vendors = store.Load(st, slotVendors, models.NewVendorBook(defSetup.VendorTypes))
		s.budgetPlan = store.Load(st, slotBudgetPlan, models.SeedBudgetPlan())
		s.expenses = store.Load(st, slotExpenses, models.SeedExpenses())
		s.tables = store.Load(st, slotTables, models.SeedTables())
	} else {
		s.guests = store.Load(st, slotGuests, []models.Guest{})
		s.vendors = store.Load(st, slotVendors, models.VendorBook{})
		s.budgetPlan = store.Load(st, slotBudgetPlan, []models.BudgetLine{})
		s.expenses = store.Load(st, slotExpenses, []models.Expense{})
		s.tables = store.Load(st, slotTables, []models.Table{})
	}

	return s
}

// put persists one collection. Write failures are logged and swallowed:
// the in-memory state stays authoritative and nothing here is fatal.
func (s *Session) put(key string, v any) {
	if err := s.store.Save(key, v); err != nil {
		log.Error().Err(err).Str("slot", key).Msg("failed to persist collection")
	}
}

// Tab returns the persisted selected view tab.
func (s *Session) Tab() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tab
}

func (s *Session) SetTab(tab string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab = tab
	s.put(slotTab, s.tab)
}

// Setup returns the singleton event record.
func (s *Session) Setup() models.Setup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.setup
}

// UpdateSetup shallow-merges the patch into the event record.
func (s *Session) UpdateSetup(patch models.SetupPatch) models.Setup {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setup = patch.Apply(s.setup)
	s.put(slotSetup, s.setup)
	return s.setup
}
