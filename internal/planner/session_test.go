package planner

import (
	"reflect"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hitchly/planner-api/internal/models"
	"github.com/hitchly/planner-api/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&store.Slot{}); err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}
	return store.New(db)
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return Open(openTestStore(t), false)
}

func TestAddRemoveGuestInverse(t *testing.T) {
	s := newTestSession(t)

	s.AddGuest()
	before := s.Guests()

	added := s.AddGuest()
	if !s.RemoveGuest(added.ID) {
		t.Fatal("RemoveGuest reported no change for a freshly added guest")
	}

	if after := s.Guests(); !reflect.DeepEqual(before, after) {
		t.Errorf("remove(add(C)) != C: got %v, want %v", after, before)
	}
}

func TestUpdateGuestPatchesOnlyNamedFields(t *testing.T) {
	s := newTestSession(t)

	first := s.AddGuest()
	second := s.AddGuest()

	rsvp := "Yes"
	updated, changed := s.UpdateGuest(second.ID, models.GuestPatch{RSVP: &rsvp})
	if !changed {
		t.Fatal("expected update to report a change")
	}
	if updated.RSVP != "Yes" {
		t.Errorf("expected RSVP 'Yes', got %q", updated.RSVP)
	}

	// Every other field of the patched record is untouched
	want := second
	want.RSVP = "Yes"
	if updated != want {
		t.Errorf("patch touched unnamed fields: got %+v, want %+v", updated, want)
	}

	// Other records are untouched
	guests := s.Guests()
	if guests[0] != first {
		t.Errorf("patch modified an unrelated record: %+v", guests[0])
	}
}

func TestUpdateUnknownGuestIsNoOp(t *testing.T) {
	s := newTestSession(t)
	s.AddGuest()
	before := s.Guests()

	name := "Ghost"
	if _, changed := s.UpdateGuest(999, models.GuestPatch{FirstName: &name}); changed {
		t.Error("expected update of unknown id to report no change")
	}
	if s.RemoveGuest(999) {
		t.Error("expected remove of unknown id to report no change")
	}
	if after := s.Guests(); !reflect.DeepEqual(before, after) {
		t.Errorf("no-op mutators changed the collection: %v", after)
	}
}

func TestGuestIDsAreUnique(t *testing.T) {
	s := newTestSession(t)

	seen := map[int64]bool{}
	for i := 0; i < 10; i++ {
		g := s.AddGuest()
		if seen[g.ID] {
			t.Fatalf("duplicate guest id %d", g.ID)
		}
		seen[g.ID] = true
	}
}

func TestSessionReloadsFromStore(t *testing.T) {
	st := openTestStore(t)

	s1 := Open(st, false)
	g := s1.AddGuest()
	name := "Jamie"
	s1.UpdateGuest(g.ID, models.GuestPatch{FirstName: &name})
	s1.SetTab("guests")

	s2 := Open(st, false)
	guests := s2.Guests()
	if len(guests) != 1 || guests[0].FirstName != "Jamie" {
		t.Errorf("reloaded session lost guest data: %v", guests)
	}
	if s2.Tab() != "guests" {
		t.Errorf("reloaded session lost tab, got %q", s2.Tab())
	}
}

func TestSeededSessionHasDemoData(t *testing.T) {
	s := Open(openTestStore(t), true)

	if len(s.Guests()) != 2 {
		t.Errorf("expected 2 seed guests, got %d", len(s.Guests()))
	}
	if len(s.BudgetPlan()) != 6 {
		t.Errorf("expected 6 seed budget lines, got %d", len(s.BudgetPlan()))
	}
	vendors := s.Vendors()
	if len(vendors) != len(models.DefaultSetup().VendorTypes) {
		t.Errorf("expected one vendor list per type, got %d", len(vendors))
	}
}

func TestVendorEntryPositionalOps(t *testing.T) {
	s := newTestSession(t)

	s.AddVendorEntry("Photographer")
	s.AddVendorEntry("Photographer")

	name := "Lens Co"
	final := true
	entry, changed := s.UpdateVendorEntry("Photographer", 1, models.VendorPatch{Name: &name, Final: &final})
	if !changed || entry.Name != "Lens Co" || !entry.Final {
		t.Errorf("vendor update failed: changed=%v entry=%+v", changed, entry)
	}

	if _, changed := s.UpdateVendorEntry("Photographer", 5, models.VendorPatch{Name: &name}); changed {
		t.Error("expected out-of-range vendor update to report no change")
	}
	if _, changed := s.UpdateVendorEntry("Caterer", 0, models.VendorPatch{Name: &name}); changed {
		t.Error("expected unknown-type vendor update to report no change")
	}

	if !s.RemoveVendorEntry("Photographer", 0) {
		t.Fatal("expected vendor removal to report a change")
	}
	book := s.Vendors()
	if len(book["Photographer"]) != 1 || book["Photographer"][0].Name != "Lens Co" {
		t.Errorf("unexpected vendor list after removal: %+v", book["Photographer"])
	}
}

func TestExpenseIndexOps(t *testing.T) {
	s := newTestSession(t)

	s.AddExpense()
	s.AddExpense()

	amount := models.Amount(250)
	paid := true
	e, changed := s.UpdateExpense(0, models.ExpensePatch{Amount: &amount, Paid: &paid})
	if !changed || e.Amount != 250 || !e.Paid {
		t.Errorf("expense update failed: %+v", e)
	}

	if _, changed := s.UpdateExpense(9, models.ExpensePatch{Paid: &paid}); changed {
		t.Error("expected out-of-range expense update to report no change")
	}
	if s.RemoveExpense(-1) {
		t.Error("expected negative-index removal to report no change")
	}

	if !s.RemoveExpense(1) {
		t.Fatal("expected expense removal to report a change")
	}
	if got := s.Expenses(); len(got) != 1 || got[0].Amount != 250 {
		t.Errorf("unexpected expenses after removal: %+v", got)
	}
}

func TestUpdateSetupPatch(t *testing.T) {
	s := newTestSession(t)
	original := s.Setup()

	bride := "Robin"
	updated := s.UpdateSetup(models.SetupPatch{BrideName: &bride})
	if updated.BrideName != "Robin" {
		t.Errorf("expected bride name 'Robin', got %q", updated.BrideName)
	}
	if updated.GroomName != original.GroomName || updated.Currency != original.Currency {
		t.Error("setup patch touched unnamed fields")
	}
	if !reflect.DeepEqual(updated.RSVPOptions, original.RSVPOptions) {
		t.Error("setup patch touched option lists")
	}
}
