package models

import "time"

// BudgetLine is one planned spending category. Lines are positional
// and the category is free text, conventionally a vendor type.
type BudgetLine struct {
	Category string `json:"category"`
	Planned  Amount `json:"planned"`
}

type BudgetLinePatch struct {
	Category *string `json:"category,omitempty"`
	Planned  *Amount `json:"planned,omitempty"`
}

func (p BudgetLinePatch) Apply(b BudgetLine) BudgetLine {
	assign(&b.Category, p.Category)
	assign(&b.Planned, p.Planned)
	return b
}

// Expense is one recorded payment. Type is cross-referenced against
// BudgetLine.Category by exact string match when aggregating.
type Expense struct {
	Date        string `json:"date"`
	Payee       string `json:"payee"`
	Type        string `json:"type"`
	Description string `json:"desc"`
	Amount      Amount `json:"amount"`
	Paid        bool   `json:"paid"`
}

type ExpensePatch struct {
	Date        *string `json:"date,omitempty"`
	Payee       *string `json:"payee,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"desc,omitempty"`
	Amount      *Amount `json:"amount,omitempty"`
	Paid        *bool   `json:"paid,omitempty"`
}

func (p ExpensePatch) Apply(e Expense) Expense {
	assign(&e.Date, p.Date)
	assign(&e.Payee, p.Payee)
	assign(&e.Type, p.Type)
	assign(&e.Description, p.Description)
	assign(&e.Amount, p.Amount)
	assign(&e.Paid, p.Paid)
	return e
}

// NewExpense returns a blank expense dated today.
func NewExpense() Expense {
	return Expense{Date: time.Now().Format("2006-01-02")}
}
