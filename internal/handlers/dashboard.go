package handlers

import (
	"context"
	"time"

	"github.com/hitchly/planner-api/internal/planner"
	"github.com/hitchly/planner-api/internal/stats"
)

type DashboardHandler struct {
	session *planner.Session
}

func NewDashboardHandler(session *planner.Session) *DashboardHandler {
	return &DashboardHandler{session: session}
}

type DashboardResponse struct {
	Body struct {
		DaysLeft          int                  `json:"daysLeft"`
		Currency          string               `json:"currency"`
		TotalGuests       int                  `json:"totalGuests"`
		InvitesSent       int                  `json:"invitesSent"`
		Confirmed         int                  `json:"confirmed"`
		TotalPlanned      float64              `json:"totalPlanned"`
		Spent             float64              `json:"spent"`
		LeftToPay         float64              `json:"leftToPay"`
		Remaining         float64              `json:"remaining"`
		RSVPBreakdown     []stats.Bucket       `json:"rsvpBreakdown"`
		VendorSpendByType []stats.AmountBucket `json:"vendorSpendByType"`
		PaidExpenseByType []stats.AmountBucket `json:"paidExpenseByType"`
	}
}

// HandleOverview recomputes every headline figure from the current
// collections; nothing is cached between requests.
func (h *DashboardHandler) HandleOverview(ctx context.Context, input *struct{}) (*DashboardResponse, error) {
	setup := h.session.Setup()
	guests := h.session.Guests()
	plan := h.session.BudgetPlan()
	expenses := h.session.Expenses()
	vendors := h.session.Vendors()

	res := &DashboardResponse{}
	res.Body.DaysLeft = stats.DaysLeft(setup.WeddingDate, time.Now())
	res.Body.Currency = setup.Currency
	res.Body.TotalGuests = len(guests)
	res.Body.InvitesSent = stats.InvitesSent(guests)
	res.Body.Confirmed = stats.ConfirmedGuests(guests)
	res.Body.TotalPlanned = stats.TotalPlanned(plan)
	res.Body.Spent = stats.SpentTotal(expenses)
	res.Body.LeftToPay = stats.LeftToPay(expenses)
	res.Body.Remaining = stats.BudgetRemaining(res.Body.TotalPlanned, res.Body.Spent)
	res.Body.RSVPBreakdown = stats.RSVPBreakdown(setup.RSVPOptions, guests)
	res.Body.VendorSpendByType = stats.VendorSpendByType(setup.VendorTypes, vendors)
	res.Body.PaidExpenseByType = stats.PaidExpenseByType(setup.VendorTypes, expenses)
	return res, nil
}
