package store

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&Slot{}); err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}
	return db
}

func TestLoadMissingSlotReturnsDefault(t *testing.T) {
	s := New(openTestDB(t))

	got := Load(s, "wp_guests", []string{"fallback"})
	if len(got) != 1 || got[0] != "fallback" {
		t.Errorf("expected fallback value, got %v", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(openTestDB(t))

	type record struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	want := []record{{ID: 1, Name: "Jamie"}, {ID: 2, Name: "Taylor"}}
	if err := s.Save("wp_guests", want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got := Load(s, "wp_guests", []record{})
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("round trip mismatch: got %v, want %v", got, want)
	}
}

func TestSaveOverwritesPreviousValue(t *testing.T) {
	s := New(openTestDB(t))

	if err := s.Save("wp_tab", "dashboard"); err != nil {
		t.Fatalf("first Save returned error: %v", err)
	}
	if err := s.Save("wp_tab", "guests"); err != nil {
		t.Fatalf("second Save returned error: %v", err)
	}

	if got := Load(s, "wp_tab", ""); got != "guests" {
		t.Errorf("expected 'guests', got %q", got)
	}
}

func TestLoadCorruptSlotReturnsDefault(t *testing.T) {
	db := openTestDB(t)
	s := New(db)

	// Write garbage directly into the slot
	db.Create(&Slot{Key: "wp_tasks", Value: []byte("{definitely not json")})

	got := Load(s, "wp_tasks", 42)
	if got != 42 {
		t.Errorf("expected default 42 for corrupt slot, got %v", got)
	}
}

func TestLoadWrongShapeReturnsDefault(t *testing.T) {
	db := openTestDB(t)
	s := New(db)

	// Valid JSON, wrong type for the destination
	db.Create(&Slot{Key: "wp_seats", Value: []byte(`"a string"`)})

	got := Load(s, "wp_seats", []int{7})
	if len(got) != 1 || got[0] != 7 {
		t.Errorf("expected default for mistyped slot, got %v", got)
	}
}
