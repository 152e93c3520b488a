package handlers

import (
	"context"

	"github.com/hitchly/planner-api/internal/models"
	"github.com/hitchly/planner-api/internal/planner"
	"github.com/hitchly/planner-api/internal/stats"
)

type BudgetHandler struct {
	session *planner.Session
}

func NewBudgetHandler(session *planner.Session) *BudgetHandler {
	return &BudgetHandler{session: session}
}

type ListBudgetPlanResponse struct {
	Body struct {
		Plan []models.BudgetLine `json:"plan"`
	}
}

func (h *BudgetHandler) HandleListPlan(ctx context.Context, input *struct{}) (*ListBudgetPlanResponse, error) {
	res := &ListBudgetPlanResponse{}
	res.Body.Plan = h.session.BudgetPlan()
	return res, nil
}

type AddBudgetLineResponse struct {
	Body struct {
		Line models.BudgetLine `json:"line"`
	}
}

func (h *BudgetHandler) HandleAddLine(ctx context.Context, input *struct{}) (*AddBudgetLineResponse, error) {
	res := &AddBudgetLineResponse{}
	res.Body.Line = h.session.AddBudgetLine()
	return res, nil
}

type UpdateBudgetLineRequest struct {
	Index int `path:"index" doc:"Position of the line in the plan"`
	Body  models.BudgetLinePatch
}

type UpdateBudgetLineResponse struct {
	Body struct {
		Changed bool              `json:"changed"`
		Line    models.BudgetLine `json:"line"`
	}
}

func (h *BudgetHandler) HandleUpdateLine(ctx context.Context, input *UpdateBudgetLineRequest) (*UpdateBudgetLineResponse, error) {
	line, changed := h.session.UpdateBudgetLine(input.Index, input.Body)
	res := &UpdateBudgetLineResponse{}
	res.Body.Changed = changed
	res.Body.Line = line
	return res, nil
}

type RemoveBudgetLineRequest struct {
	Index int `path:"index" doc:"Position of the line in the plan"`
}

type RemoveBudgetLineResponse struct {
	Body struct {
		Changed bool `json:"changed"`
	}
}

func (h *BudgetHandler) HandleRemoveLine(ctx context.Context, input *RemoveBudgetLineRequest) (*RemoveBudgetLineResponse, error) {
	res := &RemoveBudgetLineResponse{}
	res.Body.Changed = h.session.RemoveBudgetLine(input.Index)
	return res, nil
}

type ListExpensesResponse struct {
	Body struct {
		Expenses []models.Expense `json:"expenses"`
	}
}

func (h *BudgetHandler) HandleListExpenses(ctx context.Context, input *struct{}) (*ListExpensesResponse, error) {
	res := &ListExpensesResponse{}
	res.Body.Expenses = h.session.Expenses()
	return res, nil
}

type AddExpenseResponse struct {
	Body struct {
		Expense models.Expense `json:"expense"`
	}
}

func (h *BudgetHandler) HandleAddExpense(ctx context.Context, input *struct{}) (*AddExpenseResponse, error) {
	res := &AddExpenseResponse{}
	res.Body.Expense = h.session.AddExpense()
	return res, nil
}

type UpdateExpenseRequest struct {
	Index int `path:"index" doc:"Position of the expense in the list"`
	Body  models.ExpensePatch
}

type UpdateExpenseResponse struct {
	Body struct {
		Changed bool           `json:"changed"`
		Expense models.Expense `json:"expense"`
	}
}

func (h *BudgetHandler) HandleUpdateExpense(ctx context.Context, input *UpdateExpenseRequest) (*UpdateExpenseResponse, error) {
	expense, changed := h.session.UpdateExpense(input.Index, input.Body)
	res := &UpdateExpenseResponse{}
	res.Body.Changed = changed
	res.Body.Expense = expense
	return res, nil
}

type RemoveExpenseRequest struct {
	Index int `path:"index" doc:"Position of the expense in the list"`
}

type RemoveExpenseResponse struct {
	Body struct {
		Changed bool `json:"changed"`
	}
}

func (h *BudgetHandler) HandleRemoveExpense(ctx context.Context, input *RemoveExpenseRequest) (*RemoveExpenseResponse, error) {
	res := &RemoveExpenseResponse{}
	res.Body.Changed = h.session.RemoveExpense(input.Index)
	return res, nil
}

type BudgetSummaryResponse struct {
	Body struct {
		Currency       string               `json:"currency"`
		TotalPlanned   float64              `json:"totalPlanned"`
		Spent          float64              `json:"spent"`
		LeftToPay      float64              `json:"leftToPay"`
		Remaining      float64              `json:"remaining"`
		PaidByCategory []stats.AmountBucket `json:"paidByCategory"`
	}
}

func (h *BudgetHandler) HandleSummary(ctx context.Context, input *struct{}) (*BudgetSummaryResponse, error) {
	plan := h.session.BudgetPlan()
	expenses := h.session.Expenses()

	res := &BudgetSummaryResponse{}
	res.Body.Currency = h.session.Setup().Currency
	res.Body.TotalPlanned = stats.TotalPlanned(plan)
	res.Body.Spent = stats.SpentTotal(expenses)
	res.Body.LeftToPay = stats.LeftToPay(expenses)
	res.Body.Remaining = stats.BudgetRemaining(res.Body.TotalPlanned, res.Body.Spent)
	res.Body.PaidByCategory = stats.PaidByCategory(plan, expenses)
	return res, nil
}
