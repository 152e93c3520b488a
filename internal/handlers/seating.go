package handlers

import (
	"context"

	"github.com/hitchly/planner-api/internal/models"
	"github.com/hitchly/planner-api/internal/planner"
	"github.com/hitchly/planner-api/internal/stats"
)

type SeatingHandler struct {
	session *planner.Session
}

func NewSeatingHandler(session *planner.Session) *SeatingHandler {
	return &SeatingHandler{session: session}
}

type ListTablesResponse struct {
	Body struct {
		Tables []models.Table `json:"tables"`
	}
}

func (h *SeatingHandler) HandleListTables(ctx context.Context, input *struct{}) (*ListTablesResponse, error) {
	res := &ListTablesResponse{}
	res.Body.Tables = h.session.Tables()
	return res, nil
}

type AddTableResponse struct {
	Body struct {
		Table models.Table `json:"table"`
	}
}

func (h *SeatingHandler) HandleAddTable(ctx context.Context, input *struct{}) (*AddTableResponse, error) {
	res := &AddTableResponse{}
	res.Body.Table = h.session.AddTable()
	return res, nil
}

type UpdateTableRequest struct {
	Index int `path:"index" doc:"Position of the table in the list"`
	Body  models.TablePatch
}

type UpdateTableResponse struct {
	Body struct {
		Changed bool         `json:"changed"`
		Table   models.Table `json:"table"`
	}
}

func (h *SeatingHandler) HandleUpdateTable(ctx context.Context, input *UpdateTableRequest) (*UpdateTableResponse, error) {
	table, changed := h.session.UpdateTable(input.Index, input.Body)
	res := &UpdateTableResponse{}
	res.Body.Changed = changed
	res.Body.Table = table
	return res, nil
}

type RemoveTableRequest struct {
	Index int `path:"index" doc:"Position of the table in the list"`
}

type RemoveTableResponse struct {
	Body struct {
		Changed bool `json:"changed"`
	}
}

func (h *SeatingHandler) HandleRemoveTable(ctx context.Context, input *RemoveTableRequest) (*RemoveTableResponse, error) {
	res := &RemoveTableResponse{}
	res.Body.Changed = h.session.RemoveTable(input.Index)
	return res, nil
}

type ListSeatsResponse struct {
	Body struct {
		Seats []models.Seat `json:"seats"`
	}
}

func (h *SeatingHandler) HandleListSeats(ctx context.Context, input *struct{}) (*ListSeatsResponse, error) {
	res := &ListSeatsResponse{}
	res.Body.Seats = h.session.Seats()
	return res, nil
}

type AddSeatResponse struct {
	Body struct {
		Seat models.Seat `json:"seat"`
	}
}

func (h *SeatingHandler) HandleAddSeat(ctx context.Context, input *struct{}) (*AddSeatResponse, error) {
	res := &AddSeatResponse{}
	res.Body.Seat = h.session.AddSeat()
	return res, nil
}

type UpdateSeatRequest struct {
	ID   int64 `path:"id" doc:"Seat id"`
	Body models.SeatPatch
}

type UpdateSeatResponse struct {
	Body struct {
		Changed bool        `json:"changed"`
		Seat    models.Seat `json:"seat"`
	}
}

func (h *SeatingHandler) HandleUpdateSeat(ctx context.Context, input *UpdateSeatRequest) (*UpdateSeatResponse, error) {
	seat, changed := h.session.UpdateSeat(input.ID, input.Body)
	res := &UpdateSeatResponse{}
	res.Body.Changed = changed
	res.Body.Seat = seat
	return res, nil
}

type RemoveSeatRequest struct {
	ID int64 `path:"id" doc:"Seat id"`
}

type RemoveSeatResponse struct {
	Body struct {
		Changed bool `json:"changed"`
	}
}

func (h *SeatingHandler) HandleRemoveSeat(ctx context.Context, input *RemoveSeatRequest) (*RemoveSeatResponse, error) {
	res := &RemoveSeatResponse{}
	res.Body.Changed = h.session.RemoveSeat(input.ID)
	return res, nil
}

type SeatingUsageResponse struct {
	Body struct {
		Tables []stats.TableUsage `json:"tables"`
	}
}

func (h *SeatingHandler) HandleUsage(ctx context.Context, input *struct{}) (*SeatingUsageResponse, error) {
	res := &SeatingUsageResponse{}
	res.Body.Tables = stats.TablesUsage(h.session.Tables(), h.session.Seats())
	return res, nil
}
