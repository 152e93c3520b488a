package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/hitchly/planner-api/internal/planner"
)

type TransferHandler struct {
	session *planner.Session
}

func NewTransferHandler(session *planner.Session) *TransferHandler {
	return &TransferHandler{session: session}
}

type ExportResponse struct {
	Body planner.Document
}

func (h *TransferHandler) HandleExport(ctx context.Context, input *struct{}) (*ExportResponse, error) {
	return &ExportResponse{Body: h.session.Export()}, nil
}

type ImportRequest struct {
	RawBody []byte `contentType:"application/json"`
}

type ImportResponse struct {
	Body struct {
		Applied []string `json:"applied"`
	}
}

// HandleImport replaces the collections present in the uploaded
// document. A document that fails to parse is rejected whole; nothing
// is partially applied.
func (h *TransferHandler) HandleImport(ctx context.Context, input *ImportRequest) (*ImportResponse, error) {
	applied, err := h.session.Import(input.RawBody)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid planner document: " + err.Error())
	}

	res := &ImportResponse{}
	res.Body.Applied = applied
	return res, nil
}
