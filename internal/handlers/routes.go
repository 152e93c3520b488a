package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hitchly/planner-api/internal/planner"
)

func RegisterRoutes(r *chi.Mux, session *planner.Session) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Wedding Planner API", "1.0.0")
	api := humachi.New(r, config)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	setupHandler := NewSetupHandler(session)
	guestHandler := NewGuestHandler(session)
	vendorHandler := NewVendorHandler(session)
	taskHandler := NewTaskHandler(session)
	budgetHandler := NewBudgetHandler(session)
	seatingHandler := NewSeatingHandler(session)
	giftHandler := NewGiftHandler(session)
	dashboardHandler := NewDashboardHandler(session)
	transferHandler := NewTransferHandler(session)

	// Setup and selected tab
	huma.Get(api, "/setup", setupHandler.HandleGet)
	huma.Patch(api, "/setup", setupHandler.HandleUpdate)
	huma.Get(api, "/tab", setupHandler.HandleGetTab)
	huma.Put(api, "/tab", setupHandler.HandleSetTab)

	// Guests
	huma.Get(api, "/guests", guestHandler.HandleList)
	huma.Post(api, "/guests", guestHandler.HandleAdd)
	huma.Patch(api, "/guests/{id}", guestHandler.HandleUpdate)
	huma.Delete(api, "/guests/{id}", guestHandler.HandleRemove)
	huma.Get(api, "/guests/stats", guestHandler.HandleStats)

	// Vendors
	huma.Get(api, "/vendors", vendorHandler.HandleList)
	huma.Post(api, "/vendors/{type}", vendorHandler.HandleAdd)
	huma.Patch(api, "/vendors/{type}/{index}", vendorHandler.HandleUpdate)
	huma.Delete(api, "/vendors/{type}/{index}", vendorHandler.HandleRemove)
	huma.Get(api, "/vendors/stats", vendorHandler.HandleStats)

	// Timeline
	huma.Get(api, "/tasks", taskHandler.HandleList)
	huma.Post(api, "/tasks", taskHandler.HandleAdd)
	huma.Patch(api, "/tasks/{id}", taskHandler.HandleUpdate)
	huma.Delete(api, "/tasks/{id}", taskHandler.HandleRemove)
	huma.Get(api, "/timeline/stats", taskHandler.HandleStats)

	// Budget plan and expenses
	huma.Get(api, "/budget/plan", budgetHandler.HandleListPlan)
	huma.Post(api, "/budget/plan", budgetHandler.HandleAddLine)
	huma.Patch(api, "/budget/plan/{index}", budgetHandler.HandleUpdateLine)
	huma.Delete(api, "/budget/plan/{index}", budgetHandler.HandleRemoveLine)
	huma.Get(api, "/expenses", budgetHandler.HandleListExpenses)
	huma.Post(api, "/expenses", budgetHandler.HandleAddExpense)
	huma.Patch(api, "/expenses/{index}", budgetHandler.HandleUpdateExpense)
	huma.Delete(api, "/expenses/{index}", budgetHandler.HandleRemoveExpense)
	huma.Get(api, "/budget/summary", budgetHandler.HandleSummary)

	// Seating
	huma.Get(api, "/tables", seatingHandler.HandleListTables)
	huma.Post(api, "/tables", seatingHandler.HandleAddTable)
	huma.Patch(api, "/tables/{index}", seatingHandler.HandleUpdateTable)
	huma.Delete(api, "/tables/{index}", seatingHandler.HandleRemoveTable)
	huma.Get(api, "/seats", seatingHandler.HandleListSeats)
	huma.Post(api, "/seats", seatingHandler.HandleAddSeat)
	huma.Patch(api, "/seats/{id}", seatingHandler.HandleUpdateSeat)
	huma.Delete(api, "/seats/{id}", seatingHandler.HandleRemoveSeat)
	huma.Get(api, "/seating/usage", seatingHandler.HandleUsage)

	// Gifts and thank-yous
	huma.Get(api, "/gifts", giftHandler.HandleList)
	huma.Post(api, "/gifts", giftHandler.HandleAdd)
	huma.Patch(api, "/gifts/{id}", giftHandler.HandleUpdate)
	huma.Delete(api, "/gifts/{id}", giftHandler.HandleRemove)
	huma.Get(api, "/gifts/stats", giftHandler.HandleStats)

	// Dashboard and import/export
	huma.Get(api, "/dashboard", dashboardHandler.HandleOverview)
	huma.Get(api, "/export", transferHandler.HandleExport)
	huma.Post(api, "/import", transferHandler.HandleImport)
}
