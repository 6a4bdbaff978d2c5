// Package book is the application service over the ledger: it ties the
// store, the balance engine, the report aggregation and the transaction
// builders into the query and mutation surface consumed by the CLI and the
// HTTP API.
package book

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook-dev/ledgerbook/internal/accounts"
	"github.com/ledgerbook-dev/ledgerbook/internal/id"
	"github.com/ledgerbook-dev/ledgerbook/internal/ledger"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
	"github.com/ledgerbook-dev/ledgerbook/internal/report"
	"github.com/ledgerbook-dev/ledgerbook/internal/store"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("not found")

// Service exposes the bookkeeping operations. Construct one per process and
// share it; the store underneath serializes writers.
type Service struct {
	store   *store.Store
	taxRate decimal.Decimal
}

// NewService creates a Service. taxRate is the fraction applied to invoice
// subtotals at issuance, e.g. 0.10 for a flat 10% sales tax.
func NewService(st *store.Store, taxRate decimal.Decimal) *Service {
	return &Service{store: st, taxRate: taxRate}
}

// Accounts returns the chart of accounts.
func (s *Service) Accounts(ctx context.Context) ([]model.Account, error) {
	return s.store.Accounts(ctx)
}

// Transactions returns the transaction history, newest first.
func (s *Service) Transactions(ctx context.Context) ([]model.Transaction, error) {
	return s.store.Transactions(ctx)
}

// Invoices returns all invoices.
func (s *Service) Invoices(ctx context.Context) ([]model.Invoice, error) {
	return s.store.Invoices(ctx)
}

// Contacts returns all contacts.
func (s *Service) Contacts(ctx context.Context) ([]model.Contact, error) {
	return s.store.Contacts(ctx)
}

// AccountBalance derives the signed balance of an account, optionally only
// counting transactions dated up to asOf. An unknown account yields zero, the
// same as an account with no activity.
func (s *Service) AccountBalance(ctx context.Context, accountID string, asOf *model.Date) (decimal.Decimal, error) {
	accts, err := s.store.Accounts(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	acct, ok := accounts.NewService(accts).Get(accountID)
	if !ok {
		return decimal.Zero, nil
	}

	txs, err := s.store.Transactions(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return ledger.AccountBalance(acct, txs, asOf), nil
}

// ProfitAndLoss computes the P&L statement.
func (s *Service) ProfitAndLoss(ctx context.Context, asOf *model.Date) (report.ProfitAndLoss, error) {
	accts, txs, err := s.snapshot(ctx)
	if err != nil {
		return report.ProfitAndLoss{}, err
	}
	return report.ComputeProfitAndLoss(accts, txs, asOf), nil
}

// BalanceSheet computes the balance sheet.
func (s *Service) BalanceSheet(ctx context.Context, asOf *model.Date) (report.BalanceSheet, error) {
	accts, txs, err := s.snapshot(ctx)
	if err != nil {
		return report.BalanceSheet{}, err
	}
	return report.ComputeBalanceSheet(accts, txs, asOf), nil
}

// TrialBalance computes the trial balance.
func (s *Service) TrialBalance(ctx context.Context, asOf *model.Date) (report.TrialBalance, error) {
	accts, txs, err := s.snapshot(ctx)
	if err != nil {
		return report.TrialBalance{}, err
	}
	return report.ComputeTrialBalance(accts, txs, asOf), nil
}

// Record validates and appends an already-built transaction. An empty ID is
// filled in.
func (s *Service) Record(ctx context.Context, tx model.Transaction) (model.Transaction, error) {
	if tx.ID == "" {
		tx.ID = id.New(id.PrefixTransaction)
	}
	if err := s.store.AppendTransaction(ctx, tx); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

// RecordJournal builds and appends a manual two-leg journal entry.
func (s *Service) RecordJournal(ctx context.Context, params ledger.JournalParams) (model.Transaction, error) {
	tx, err := ledger.BuildJournal(params)
	if err != nil {
		return model.Transaction{}, err
	}
	if err := s.store.AppendTransaction(ctx, tx); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

// InvoiceItemParams is one billed line of a new invoice.
type InvoiceItemParams struct {
	Name     string
	Quantity decimal.Decimal
	Rate     decimal.Decimal
}

// IssueInvoiceParams holds parameters for issuing an invoice.
type IssueInvoiceParams struct {
	Date        model.Date // defaults to today
	ContactID   string
	ContactName string
	Items       []InvoiceItemParams
}

// IssueInvoice creates an invoice from the billed items and posts its linked
// sales transaction: receivables are debited for the total, revenue credited
// for the subtotal and sales tax payable credited for the tax. The invoice
// is stored in SENT status with a due date 30 days out.
func (s *Service) IssueInvoice(ctx context.Context, params IssueInvoiceParams) (model.Invoice, error) {
	if len(params.Items) == 0 {
		return model.Invoice{}, fmt.Errorf("%w: invoice requires at least one item", ledger.ErrValidation)
	}

	date := params.Date
	if date.IsZero() {
		date = model.Today()
	}

	items := make([]model.InvoiceItem, len(params.Items))
	subtotal := decimal.Zero
	for i, it := range params.Items {
		if !it.Quantity.IsPositive() {
			return model.Invoice{}, fmt.Errorf("%w: item %q quantity must be positive", ledger.ErrValidation, it.Name)
		}
		if it.Rate.IsNegative() {
			return model.Invoice{}, fmt.Errorf("%w: item %q rate must not be negative", ledger.ErrValidation, it.Name)
		}
		amount := it.Quantity.Mul(it.Rate).Round(2)
		items[i] = model.InvoiceItem{
			ItemName: it.Name,
			Quantity: it.Quantity,
			Rate:     it.Rate,
			Amount:   amount,
		}
		subtotal = subtotal.Add(amount)
	}

	invs, err := s.store.Invoices(ctx)
	if err != nil {
		return model.Invoice{}, err
	}

	inv := model.Invoice{
		ID:          id.New(id.PrefixInvoice),
		Number:      id.FormatInvoiceNumber(len(invs) + 1),
		Date:        date,
		DueDate:     date.AddDays(30),
		ContactID:   params.ContactID,
		ContactName: params.ContactName,
		Items:       items,
		Status:      model.InvoiceSent,
	}

	tx, err := ledger.BuildInvoiceTransaction(ledger.InvoiceIssuanceParams{
		Date:        date,
		Number:      inv.Number,
		ContactName: inv.ContactName,
		Subtotal:    subtotal,
		TaxRate:     s.taxRate,
		InvoiceID:   inv.ID,
	})
	if err != nil {
		return model.Invoice{}, err
	}

	// The posting is the source of truth for the amounts: total is what
	// receivables were debited, tax is the difference.
	inv.Subtotal = subtotal
	inv.Total = tx.TotalDebits()
	inv.Tax = inv.Total.Sub(subtotal)
	inv.TransactionID = tx.ID

	if err := s.store.AppendTransaction(ctx, tx); err != nil {
		return model.Invoice{}, err
	}
	if err := s.store.UpsertInvoice(ctx, inv); err != nil {
		return model.Invoice{}, err
	}
	return inv, nil
}

// SetInvoiceStatus advances an invoice's lifecycle state.
func (s *Service) SetInvoiceStatus(ctx context.Context, invoiceID string, status model.InvoiceStatus) (model.Invoice, error) {
	invs, err := s.store.Invoices(ctx)
	if err != nil {
		return model.Invoice{}, err
	}

	for _, inv := range invs {
		if inv.ID == invoiceID {
			inv.Status = status
			if err := s.store.UpsertInvoice(ctx, inv); err != nil {
				return model.Invoice{}, err
			}
			return inv, nil
		}
	}
	return model.Invoice{}, fmt.Errorf("invoice %s: %w", invoiceID, ErrNotFound)
}

// AddContact stores a new contact. Blank names are rejected; the type
// defaults to CUSTOMER.
func (s *Service) AddContact(ctx context.Context, contact model.Contact) (model.Contact, error) {
	if contact.Name == "" {
		return model.Contact{}, fmt.Errorf("%w: contact name is required", ledger.ErrValidation)
	}
	if contact.ID == "" {
		contact.ID = id.New(id.PrefixContact)
	}
	if contact.Type == "" {
		contact.Type = model.ContactCustomer
	}
	if err := s.store.AppendContact(ctx, contact); err != nil {
		return model.Contact{}, err
	}
	return contact, nil
}

func (s *Service) snapshot(ctx context.Context) ([]model.Account, []model.Transaction, error) {
	accts, err := s.store.Accounts(ctx)
	if err != nil {
		return nil, nil, err
	}
	txs, err := s.store.Transactions(ctx)
	if err != nil {
		return nil, nil, err
	}
	return accts, txs, nil
}
