package models

import "time"

// Demo records seeded into empty slots so a fresh install has something
// to look at. Disabled via SEED_DEMO_DATA=false.

func SeedGuests() []Guest {
	return []Guest{
		{
			ID:             1,
			FirstName:      "Jamie",
			LastName:       "Lee",
			Role:           "Bride",
			Tag:            "Bride Friends",
			Email:          "jamie@example.com",
			SaveDate:       "Sent",
			Invite:         "Sent",
			RSVP:           "Yes",
			PlusOneAllowed: "No",
			Meal:           "Vegetarian",
			Allergies:      "Nuts",
		},
		{
			ID:             2,
			FirstName:      "Taylor",
			LastName:       "Morgan",
			Role:           "Groom",
			Tag:            "Groom Friends",
			Email:          "taylor@example.com",
			SaveDate:       "Delivered",
			Invite:         "Delivered",
			RSVP:           "No response",
			PlusOneAllowed: "Yes",
			PlusOneName:    "Alex Guest",
			Meal:           "Beef",
			Notes:          "Wheelchair access",
		},
	}
}

func SeedBudgetPlan() []BudgetLine {
	return []BudgetLine{
		{Category: "Venue", Planned: 6000},
		{Category: "Caterer", Planned: 4000},
		{Category: "Photographer", Planned: 2000},
		{Category: "Band/DJ", Planned: 1200},
		{Category: "Florist", Planned: 800},
		{Category: "Misc", Planned: 1000},
	}
}

func SeedExpenses() []Expense {
	today := time.Now().Format("2006-01-02")
	return []Expense{
		{Date: today, Payee: "Lens Co", Type: "Photographer", Description: "Deposit", Amount: 500, Paid: true},
		{Date: today, Payee: "Tasty Foods", Type: "Caterer", Description: "Deposit", Amount: 1000, Paid: false},
	}
}

func SeedTables() []Table {
	return []Table{
		{Name: "A", Capacity: 8, Area: "Main"},
		{Name: "B", Capacity: 8, Area: "Main"},
	}
}
