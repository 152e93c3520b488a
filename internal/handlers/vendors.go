package handlers

import (
	"context"

	"github.com/hitchly/planner-api/internal/models"
	"github.com/hitchly/planner-api/internal/planner"
	"github.com/hitchly/planner-api/internal/stats"
)

type VendorHandler struct {
	session *planner.Session
}

func NewVendorHandler(session *planner.Session) *VendorHandler {
	return &VendorHandler{session: session}
}

type ListVendorsResponse struct {
	Body struct {
		Vendors models.VendorBook `json:"vendors"`
	}
}

func (h *VendorHandler) HandleList(ctx context.Context, input *struct{}) (*ListVendorsResponse, error) {
	res := &ListVendorsResponse{}
	res.Body.Vendors = h.session.Vendors()
	return res, nil
}

type AddVendorRequest struct {
	Type string `path:"type" doc:"Vendor type the entry belongs to"`
}

type AddVendorResponse struct {
	Body struct {
		Entry models.VendorEntry `json:"entry"`
	}
}

func (h *VendorHandler) HandleAdd(ctx context.Context, input *AddVendorRequest) (*AddVendorResponse, error) {
	res := &AddVendorResponse{}
	res.Body.Entry = h.session.AddVendorEntry(input.Type)
	return res, nil
}

type UpdateVendorRequest struct {
	Type  string `path:"type" doc:"Vendor type the entry belongs to"`
	Index int    `path:"index" doc:"Position of the entry within its type"`
	Body  models.VendorPatch
}

type UpdateVendorResponse struct {
	Body struct {
		Changed bool               `json:"changed"`
		Entry   models.VendorEntry `json:"entry"`
	}
}

func (h *VendorHandler) HandleUpdate(ctx context.Context, input *UpdateVendorRequest) (*UpdateVendorResponse, error) {
	entry, changed := h.session.UpdateVendorEntry(input.Type, input.Index, input.Body)
	res := &UpdateVendorResponse{}
	res.Body.Changed = changed
	res.Body.Entry = entry
	return res, nil
}

type RemoveVendorRequest struct {
	Type  string `path:"type" doc:"Vendor type the entry belongs to"`
	Index int    `path:"index" doc:"Position of the entry within its type"`
}

type RemoveVendorResponse struct {
	Body struct {
		Changed bool `json:"changed"`
	}
}

func (h *VendorHandler) HandleRemove(ctx context.Context, input *RemoveVendorRequest) (*RemoveVendorResponse, error) {
	res := &RemoveVendorResponse{}
	res.Body.Changed = h.session.RemoveVendorEntry(input.Type, input.Index)
	return res, nil
}

type VendorStatsResponse struct {
	Body struct {
		SpendByType []stats.AmountBucket `json:"spendByType"`
	}
}

func (h *VendorHandler) HandleStats(ctx context.Context, input *struct{}) (*VendorStatsResponse, error) {
	setup := h.session.Setup()
	res := &VendorStatsResponse{}
	res.Body.SpendByType = stats.VendorSpendByType(setup.VendorTypes, h.session.Vendors())
	return res, nil
}
