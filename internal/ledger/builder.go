package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook-dev/ledgerbook/internal/accounts"
	"github.com/ledgerbook-dev/ledgerbook/internal/id"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

// JournalParams holds parameters for a manual two-leg journal entry.
type JournalParams struct {
	Date          model.Date
	Description   string
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
	Reference     string
}

// BuildJournal constructs a balanced two-entry journal transaction. It fails
// if the amount is not positive or either account reference is blank, so a
// caller can never obtain an unbalanced or dangling transaction from it.
func BuildJournal(params JournalParams) (model.Transaction, error) {
	if !params.Amount.IsPositive() {
		return model.Transaction{}, fmt.Errorf("%w: journal amount must be positive, got %s", ErrValidation, params.Amount)
	}
	if params.DebitAccount == "" || params.CreditAccount == "" {
		return model.Transaction{}, fmt.Errorf("%w: journal requires both a debit and a credit account", ErrValidation)
	}

	date := params.Date
	if date.IsZero() {
		date = model.Today()
	}

	return model.Transaction{
		ID:          id.New(id.PrefixTransaction),
		Date:        date,
		Type:        model.TransactionJournal,
		Description: params.Description,
		Entries: []model.LedgerEntry{
			{AccountID: params.DebitAccount, Debit: params.Amount},
			{AccountID: params.CreditAccount, Credit: params.Amount},
		},
		ReferenceID: params.Reference,
	}, nil
}

// InvoiceIssuanceParams holds parameters for the transaction that posts an
// issued invoice to the ledger.
type InvoiceIssuanceParams struct {
	Date        model.Date
	Number      string
	ContactName string
	Subtotal    decimal.Decimal
	TaxRate     decimal.Decimal
	InvoiceID   string
}

// BuildInvoiceTransaction constructs the sales posting for an issued invoice:
// debit Accounts Receivable for subtotal plus tax, credit Sales Revenue for
// the subtotal, credit Sales Tax Payable for the tax. Tax is the subtotal
// times the rate, rounded to two decimal places.
func BuildInvoiceTransaction(params InvoiceIssuanceParams) (model.Transaction, error) {
	if !params.Subtotal.IsPositive() {
		return model.Transaction{}, fmt.Errorf("%w: invoice subtotal must be positive, got %s", ErrValidation, params.Subtotal)
	}
	if params.TaxRate.IsNegative() {
		return model.Transaction{}, fmt.Errorf("%w: tax rate must not be negative, got %s", ErrValidation, params.TaxRate)
	}

	subtotal := params.Subtotal.Round(2)
	tax := subtotal.Mul(params.TaxRate).Round(2)
	total := subtotal.Add(tax)

	date := params.Date
	if date.IsZero() {
		date = model.Today()
	}

	entries := []model.LedgerEntry{
		{AccountID: accounts.Receivable, Debit: total},
		{AccountID: accounts.Sales, Credit: subtotal},
	}
	if !tax.IsZero() {
		entries = append(entries, model.LedgerEntry{AccountID: accounts.SalesTax, Credit: tax})
	}

	return model.Transaction{
		ID:          id.New(id.PrefixTransaction),
		Date:        date,
		Type:        model.TransactionSales,
		Description: fmt.Sprintf("Invoice #%s for %s", params.Number, params.ContactName),
		Entries:     entries,
		ReferenceID: params.InvoiceID,
	}, nil
}
