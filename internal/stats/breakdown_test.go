package stats

import (
	"testing"

	"github.com/hitchly/planner-api/internal/models"
)

func TestRSVPBreakdown(t *testing.T) {
	rsvpOptions := []string{"Yes", "No", "Maybe", "No response"}
	guests := []models.Guest{
		{RSVP: "Yes"},
		{RSVP: "Yes"},
		{RSVP: "No"},
	}

	got := RSVPBreakdown(rsvpOptions, guests)

	want := []Bucket{
		{Label: "Yes", Count: 2},
		{Label: "No", Count: 1},
		{Label: "Maybe", Count: 0},
		{Label: "No response", Count: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBreakdownExcludesOutOfVocabularyValues(t *testing.T) {
	vocab := []string{"Yes", "No"}
	guests := []models.Guest{
		{RSVP: "Yes"},
		{RSVP: "Pending"}, // not in the vocabulary
		{RSVP: "No"},
		{RSVP: ""},
	}

	got := Breakdown(vocab, guests, func(g models.Guest) string { return g.RSVP })

	total := 0
	for _, b := range got {
		total += b.Count
	}
	// Bucket totals count only in-vocabulary records
	if total != 2 {
		t.Errorf("expected bucket total 2, got %d", total)
	}
}

func TestBreakdownEmptyInputs(t *testing.T) {
	if got := Breakdown(nil, []models.Guest{{RSVP: "Yes"}}, func(g models.Guest) string { return g.RSVP }); len(got) != 0 {
		t.Errorf("expected no buckets for empty vocabulary, got %v", got)
	}

	got := Breakdown([]string{"Yes"}, []models.Guest{}, func(g models.Guest) string { return g.RSVP })
	if len(got) != 1 || got[0].Count != 0 {
		t.Errorf("expected one empty bucket, got %v", got)
	}
}

func TestGuestCounts(t *testing.T) {
	guests := []models.Guest{
		{Invite: "Sent", RSVP: "Yes"},
		{Invite: "Delivered", RSVP: "No"},
		{Invite: "Not sent", RSVP: "Yes"},
	}

	if got := InvitesSent(guests); got != 2 {
		t.Errorf("expected 2 invites sent, got %d", got)
	}
	if got := ConfirmedGuests(guests); got != 2 {
		t.Errorf("expected 2 confirmed, got %d", got)
	}
}
