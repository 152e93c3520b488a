package handlers

import (
	"context"

	"github.com/hitchly/planner-api/internal/models"
	"github.com/hitchly/planner-api/internal/planner"
	"github.com/hitchly/planner-api/internal/stats"
)

type GuestHandler struct {
	session *planner.Session
}

func NewGuestHandler(session *planner.Session) *GuestHandler {
	return &GuestHandler{session: session}
}

type ListGuestsResponse struct {
	Body struct {
		Guests []models.Guest `json:"guests"`
	}
}

func (h *GuestHandler) HandleList(ctx context.Context, input *struct{}) (*ListGuestsResponse, error) {
	res := &ListGuestsResponse{}
	res.Body.Guests = h.session.Guests()
	return res, nil
}

type AddGuestResponse struct {
	Body struct {
		Guest models.Guest `json:"guest"`
	}
}

func (h *GuestHandler) HandleAdd(ctx context.Context, input *struct{}) (*AddGuestResponse, error) {
	res := &AddGuestResponse{}
	res.Body.Guest = h.session.AddGuest()
	return res, nil
}

type UpdateGuestRequest struct {
	ID   int64 `path:"id" doc:"Guest id"`
	Body models.GuestPatch
}

type UpdateGuestResponse struct {
	Body struct {
		Changed bool         `json:"changed"`
		Guest   models.Guest `json:"guest"`
	}
}

// HandleUpdate patches one guest. An unknown id is a no-op, reported
// through the changed flag rather than an error.
func (h *GuestHandler) HandleUpdate(ctx context.Context, input *UpdateGuestRequest) (*UpdateGuestResponse, error) {
	guest, changed := h.session.UpdateGuest(input.ID, input.Body)
	res := &UpdateGuestResponse{}
	res.Body.Changed = changed
	res.Body.Guest = guest
	return res, nil
}

type RemoveGuestRequest struct {
	ID int64 `path:"id" doc:"Guest id"`
}

type RemoveGuestResponse struct {
	Body struct {
		Changed bool `json:"changed"`
	}
}

func (h *GuestHandler) HandleRemove(ctx context.Context, input *RemoveGuestRequest) (*RemoveGuestResponse, error) {
	res := &RemoveGuestResponse{}
	res.Body.Changed = h.session.RemoveGuest(input.ID)
	return res, nil
}

type GuestStatsResponse struct {
	Body struct {
		Total         int            `json:"total"`
		InvitesSent   int            `json:"invitesSent"`
		Confirmed     int            `json:"confirmed"`
		RSVPBreakdown []stats.Bucket `json:"rsvpBreakdown"`
		MealBreakdown []stats.Bucket `json:"mealBreakdown"`
	}
}

func (h *GuestHandler) HandleStats(ctx context.Context, input *struct{}) (*GuestStatsResponse, error) {
	setup := h.session.Setup()
	guests := h.session.Guests()

	res := &GuestStatsResponse{}
	res.Body.Total = len(guests)
	res.Body.InvitesSent = stats.InvitesSent(guests)
	res.Body.Confirmed = stats.ConfirmedGuests(guests)
	res.Body.RSVPBreakdown = stats.RSVPBreakdown(setup.RSVPOptions, guests)
	res.Body.MealBreakdown = stats.MealBreakdown(setup.MealOptions, guests)
	return res, nil
}
