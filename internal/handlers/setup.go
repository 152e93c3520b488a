package handlers

import (
	"context"

	"github.com/hitchly/planner-api/internal/models"
	"github.com/hitchly/planner-api/internal/planner"
)

type SetupHandler struct {
	session *planner.Session
}

func NewSetupHandler(session *planner.Session) *SetupHandler {
	return &SetupHandler{session: session}
}

type GetSetupResponse struct {
	Body struct {
		Setup models.Setup `json:"setup"`
	}
}

func (h *SetupHandler) HandleGet(ctx context.Context, input *struct{}) (*GetSetupResponse, error) {
	res := &GetSetupResponse{}
	res.Body.Setup = h.session.Setup()
	return res, nil
}

type UpdateSetupRequest struct {
	Body models.SetupPatch
}

type UpdateSetupResponse struct {
	Body struct {
		Setup models.Setup `json:"setup"`
	}
}

func (h *SetupHandler) HandleUpdate(ctx context.Context, input *UpdateSetupRequest) (*UpdateSetupResponse, error) {
	res := &UpdateSetupResponse{}
	res.Body.Setup = h.session.UpdateSetup(input.Body)
	return res, nil
}

type GetTabResponse struct {
	Body struct {
		Tab string `json:"tab"`
	}
}

func (h *SetupHandler) HandleGetTab(ctx context.Context, input *struct{}) (*GetTabResponse, error) {
	res := &GetTabResponse{}
	res.Body.Tab = h.session.Tab()
	return res, nil
}

type SetTabRequest struct {
	Body struct {
		Tab string `json:"tab" doc:"Selected view tab" required:"true"`
	}
}

type SetTabResponse struct {
	Body struct {
		Tab string `json:"tab"`
	}
}

func (h *SetupHandler) HandleSetTab(ctx context.Context, input *SetTabRequest) (*SetTabResponse, error) {
	h.session.SetTab(input.Body.Tab)
	res := &SetTabResponse{}
	res.Body.Tab = input.Body.Tab
	return res, nil
}
