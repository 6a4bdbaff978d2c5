package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ledgerbook-dev/ledgerbook/internal/book"
	"github.com/ledgerbook-dev/ledgerbook/internal/ledger"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

// Handler serves the bookkeeping API.
type Handler struct {
	svc *book.Service
	log *slog.Logger
}

// NewHandler creates a Handler over the given service.
func NewHandler(svc *book.Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, log: log}
}

func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accts, err := h.svc.Accounts(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, accts)
}

func (h *Handler) GetAccountBalance(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")

	var asOf *model.Date
	if s := r.URL.Query().Get("as_of"); s != "" {
		d, err := model.ParseDate(s)
		if err != nil {
			h.respond(w, http.StatusBadRequest, errorResponse{Error: "as_of must be YYYY-MM-DD"})
			return
		}
		asOf = &d
	}

	balance, err := h.svc.AccountBalance(r.Context(), accountID, asOf)
	if err != nil {
		h.fail(w, err)
		return
	}

	resp := balanceResponse{AccountID: accountID, Balance: balance}
	if asOf != nil {
		resp.AsOf = asOf.String()
	}
	h.respond(w, http.StatusOK, resp)
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.Transactions(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, txs)
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	entries := make([]model.LedgerEntry, len(req.Entries))
	for i, e := range req.Entries {
		entries[i] = model.LedgerEntry{AccountID: e.AccountID, Debit: e.Debit, Credit: e.Credit}
	}

	txType := req.Type
	if txType == "" {
		txType = model.TransactionJournal
	}

	tx, err := h.svc.Record(r.Context(), model.Transaction{
		Date:        req.Date,
		Type:        txType,
		Description: req.Description,
		Entries:     entries,
		ReferenceID: req.ReferenceID,
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusCreated, tx)
}

func (h *Handler) CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	var req createJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	tx, err := h.svc.RecordJournal(r.Context(), ledger.JournalParams{
		Date:          req.Date,
		Description:   req.Description,
		DebitAccount:  req.DebitAccount,
		CreditAccount: req.CreditAccount,
		Amount:        req.Amount,
		Reference:     req.Reference,
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusCreated, tx)
}

func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invs, err := h.svc.Invoices(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, invs)
}

func (h *Handler) IssueInvoice(w http.ResponseWriter, r *http.Request) {
	var req issueInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	items := make([]book.InvoiceItemParams, len(req.Items))
	for i, it := range req.Items {
		items[i] = book.InvoiceItemParams{Name: it.Name, Quantity: it.Quantity, Rate: it.Rate}
	}

	inv, err := h.svc.IssueInvoice(r.Context(), book.IssueInvoiceParams{
		Date:        req.Date,
		ContactID:   req.ContactID,
		ContactName: req.ContactName,
		Items:       items,
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusCreated, inv)
}

func (h *Handler) UpdateInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	var req updateInvoiceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	inv, err := h.svc.SetInvoiceStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, inv)
}

func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.Contacts(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, cs)
}

func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var contact model.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		h.respond(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	contact.ID = ""

	created, err := h.svc.AddContact(r.Context(), contact)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusCreated, created)
}

func (h *Handler) GetProfitAndLoss(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, func(asOf *model.Date) (any, error) {
		return h.svc.ProfitAndLoss(r.Context(), asOf)
	})
}

func (h *Handler) GetBalanceSheet(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, func(asOf *model.Date) (any, error) {
		return h.svc.BalanceSheet(r.Context(), asOf)
	})
}

func (h *Handler) GetTrialBalance(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, func(asOf *model.Date) (any, error) {
		return h.svc.TrialBalance(r.Context(), asOf)
	})
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request, compute func(*model.Date) (any, error)) {
	var asOf *model.Date
	if s := r.URL.Query().Get("as_of"); s != "" {
		d, err := model.ParseDate(s)
		if err != nil {
			h.respond(w, http.StatusBadRequest, errorResponse{Error: "as_of must be YYYY-MM-DD"})
			return
		}
		asOf = &d
	}

	result, err := compute(asOf)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, result)
}

// fail maps domain errors onto HTTP status codes.
func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrValidation):
		h.respond(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, book.ErrNotFound):
		h.respond(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		h.log.Error("request failed", "error", err)
		h.respond(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (h *Handler) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("failed to encode response", "error", err)
	}
}
