package api

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

// createTransactionRequest is a full entry list to append as-is.
type createTransactionRequest struct {
	Date        model.Date            `json:"date"`
	Type        model.TransactionType `json:"type"`
	Description string                `json:"description"`
	Entries     []entryRequest        `json:"entries"`
	ReferenceID string                `json:"referenceId"`
}

type entryRequest struct {
	AccountID string          `json:"accountId"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// createJournalRequest is the two-leg manual entry shortcut.
type createJournalRequest struct {
	Date          model.Date      `json:"date"`
	Description   string          `json:"description"`
	DebitAccount  string          `json:"debitAccount"`
	CreditAccount string          `json:"creditAccount"`
	Amount        decimal.Decimal `json:"amount"`
	Reference     string          `json:"reference"`
}

type issueInvoiceRequest struct {
	Date        model.Date           `json:"date"`
	ContactID   string               `json:"contactId"`
	ContactName string               `json:"contactName"`
	Items       []invoiceItemRequest `json:"items"`
}

type invoiceItemRequest struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
}

type updateInvoiceStatusRequest struct {
	Status model.InvoiceStatus `json:"status"`
}

type balanceResponse struct {
	AccountID string          `json:"accountId"`
	Balance   decimal.Decimal `json:"balance"`
	AsOf      string          `json:"asOf,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}
