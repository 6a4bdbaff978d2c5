// Package api exposes the bookkeeping service over HTTP for the web UI.
// Handlers translate JSON in and out; all domain logic stays in book.
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates the router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", h.ListAccounts)
			r.Get("/{id}/balance", h.GetAccountBalance)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", h.ListTransactions)
			r.Post("/", h.CreateTransaction)
		})

		r.Post("/journal", h.CreateJournalEntry)

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", h.ListInvoices)
			r.Post("/", h.IssueInvoice)
			r.Patch("/{id}/status", h.UpdateInvoiceStatus)
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", h.ListContacts)
			r.Post("/", h.CreateContact)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/profit-and-loss", h.GetProfitAndLoss)
			r.Get("/balance-sheet", h.GetBalanceSheet)
			r.Get("/trial-balance", h.GetTrialBalance)
		})
	})

	return r
}
