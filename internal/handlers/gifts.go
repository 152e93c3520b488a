package handlers

import (
	"context"

	"github.com/hitchly/planner-api/internal/models"
	"github.com/hitchly/planner-api/internal/planner"
	"github.com/hitchly/planner-api/internal/stats"
)

type GiftHandler struct {
	session *planner.Session
}

func NewGiftHandler(session *planner.Session) *GiftHandler {
	return &GiftHandler{session: session}
}

type ListGiftsResponse struct {
	Body struct {
		Gifts []models.Gift `json:"gifts"`
	}
}

func (h *GiftHandler) HandleList(ctx context.Context, input *struct{}) (*ListGiftsResponse, error) {
	res := &ListGiftsResponse{}
	res.Body.Gifts = h.session.Gifts()
	return res, nil
}

type AddGiftResponse struct {
	Body struct {
		Gift models.Gift `json:"gift"`
	}
}

func (h *GiftHandler) HandleAdd(ctx context.Context, input *struct{}) (*AddGiftResponse, error) {
	res := &AddGiftResponse{}
	res.Body.Gift = h.session.AddGift()
	return res, nil
}

type UpdateGiftRequest struct {
	ID   int64 `path:"id" doc:"Gift id"`
	Body models.GiftPatch
}

type UpdateGiftResponse struct {
	Body struct {
		Changed bool        `json:"changed"`
		Gift    models.Gift `json:"gift"`
	}
}

func (h *GiftHandler) HandleUpdate(ctx context.Context, input *UpdateGiftRequest) (*UpdateGiftResponse, error) {
	gift, changed := h.session.UpdateGift(input.ID, input.Body)
	res := &UpdateGiftResponse{}
	res.Body.Changed = changed
	res.Body.Gift = gift
	return res, nil
}

type RemoveGiftRequest struct {
	ID int64 `path:"id" doc:"Gift id"`
}

type RemoveGiftResponse struct {
	Body struct {
		Changed bool `json:"changed"`
	}
}

func (h *GiftHandler) HandleRemove(ctx context.Context, input *RemoveGiftRequest) (*RemoveGiftResponse, error) {
	res := &RemoveGiftResponse{}
	res.Body.Changed = h.session.RemoveGift(input.ID)
	return res, nil
}

type GiftStatsResponse struct {
	Body struct {
		ThankYouCounts []stats.Bucket `json:"thankYouCounts"`
		CategoryCounts []stats.Bucket `json:"categoryCounts"`
	}
}

func (h *GiftHandler) HandleStats(ctx context.Context, input *struct{}) (*GiftStatsResponse, error) {
	gifts := h.session.Gifts()

	res := &GiftStatsResponse{}
	res.Body.ThankYouCounts = stats.ThankYouCounts(gifts)
	res.Body.CategoryCounts = stats.GiftCategoryCounts(gifts)
	return res, nil
}
