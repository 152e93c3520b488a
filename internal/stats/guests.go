package stats

import "github.com/hitchly/planner-api/internal/models"

// InvitesSent counts guests whose invite has gone out.
func InvitesSent(guests []models.Guest) int {
	n := 0
	for _, g := range guests {
		if g.Invite == "Sent" || g.Invite == "Delivered" {
			n++
		}
	}
	return n
}

// ConfirmedGuests counts guests with a "Yes" RSVP.
func ConfirmedGuests(guests []models.Guest) int {
	n := 0
	for _, g := range guests {
		if g.RSVP == "Yes" {
			n++
		}
	}
	return n
}

// RSVPBreakdown buckets guests by RSVP status over the Setup vocabulary.
func RSVPBreakdown(rsvpOptions []string, guests []models.Guest) []Bucket {
	return Breakdown(rsvpOptions, guests, func(g models.Guest) string { return g.RSVP })
}

// MealBreakdown buckets guests by meal choice over the Setup vocabulary.
func MealBreakdown(mealOptions []string, guests []models.Guest) []Bucket {
	return Breakdown(mealOptions, guests, func(g models.Guest) string { return g.Meal })
}
