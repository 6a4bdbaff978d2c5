package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerbook-dev/ledgerbook/internal/accounts"
	"github.com/ledgerbook-dev/ledgerbook/internal/ledger"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(NewMemory())
	require.NoError(t, s.Init(context.Background()))
	return s
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func tx(id string, date model.Date, debit, credit, amount string) model.Transaction {
	return model.Transaction{
		ID:          id,
		Date:        date,
		Type:        model.TransactionJournal,
		Description: "test",
		Entries: []model.LedgerEntry{
			{AccountID: debit, Debit: dec(amount)},
			{AccountID: credit, Credit: dec(amount)},
		},
	}
}

func TestInitSeedsChart(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	accts, err := s.Accounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accts, 12)

	txs, err := s.Transactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txs)

	invs, err := s.Invoices(ctx)
	require.NoError(t, err)
	assert.Empty(t, invs)

	cs, err := s.Contacts(ctx)
	require.NoError(t, err)
	assert.Empty(t, cs)
}

func TestInitIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.Accounts(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Init(ctx))
	second, err := s.Accounts(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, second, 12)
}

func TestInitPreservesData(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	d := model.NewDate(2025, time.January, 15)
	require.NoError(t, s.AppendTransaction(ctx, tx("txn_1", d, accounts.Rent, accounts.Bank, "500.00")))

	require.NoError(t, s.Init(ctx))

	txs, err := s.Transactions(ctx)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestAppendTransaction(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	d := model.NewDate(2025, time.January, 15)
	require.NoError(t, s.AppendTransaction(ctx, tx("txn_1", d, accounts.Rent, accounts.Bank, "500.00")))

	txs, err := s.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "txn_1", txs[0].ID)
	assert.True(t, dec("500").Equal(txs[0].Entries[0].Debit))
}

func TestAppendTransactionRejectsUnbalanced(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	bad := tx("txn_bad", model.NewDate(2025, time.January, 15), accounts.Rent, accounts.Bank, "100.00")
	bad.Entries[1].Credit = dec("90.00")

	err := s.AppendTransaction(ctx, bad)
	assert.ErrorIs(t, err, ledger.ErrValidation)

	// The collection is unchanged.
	txs, err := s.Transactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestAppendTransactionRejectsSingleEntry(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.AppendTransaction(ctx, model.Transaction{
		ID:   "txn_one",
		Date: model.NewDate(2025, time.January, 15),
		Entries: []model.LedgerEntry{
			{AccountID: accounts.Bank, Debit: dec("10")},
		},
	})
	assert.ErrorIs(t, err, ledger.ErrValidation)
}

func TestAppendTransactionRejectsUnknownAccount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.AppendTransaction(ctx,
		tx("txn_x", model.NewDate(2025, time.January, 15), "acc_bogus", accounts.Bank, "10.00"))
	assert.ErrorIs(t, err, ledger.ErrValidation)
}

func TestTransactionsOrderedByDateDescending(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	jan := model.NewDate(2025, time.January, 10)
	feb := model.NewDate(2025, time.February, 10)
	mar := model.NewDate(2025, time.March, 10)

	require.NoError(t, s.AppendTransaction(ctx, tx("txn_feb", feb, accounts.Rent, accounts.Bank, "1.00")))
	require.NoError(t, s.AppendTransaction(ctx, tx("txn_mar", mar, accounts.Rent, accounts.Bank, "1.00")))
	require.NoError(t, s.AppendTransaction(ctx, tx("txn_jan", jan, accounts.Rent, accounts.Bank, "1.00")))

	txs, err := s.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, "txn_mar", txs[0].ID)
	assert.Equal(t, "txn_feb", txs[1].ID)
	assert.Equal(t, "txn_jan", txs[2].ID)
}

func TestTransactionsSameDateKeepInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	d := model.NewDate(2025, time.January, 10)
	require.NoError(t, s.AppendTransaction(ctx, tx("txn_first", d, accounts.Rent, accounts.Bank, "1.00")))
	require.NoError(t, s.AppendTransaction(ctx, tx("txn_second", d, accounts.Rent, accounts.Bank, "2.00")))

	txs, err := s.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "txn_first", txs[0].ID)
	assert.Equal(t, "txn_second", txs[1].ID)
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	accts, err := s.Accounts(ctx)
	require.NoError(t, err)
	accts[0].Name = "mutated"

	fresh, err := s.Accounts(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", fresh[0].Name)
}

func TestUpsertInvoice(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	inv := model.Invoice{
		ID:     "inv_1",
		Number: "INV-0001",
		Date:   model.NewDate(2025, time.January, 15),
		Status: model.InvoiceSent,
	}
	require.NoError(t, s.UpsertInvoice(ctx, inv))

	inv.Status = model.InvoicePaid
	require.NoError(t, s.UpsertInvoice(ctx, inv))

	invs, err := s.Invoices(ctx)
	require.NoError(t, err)
	require.Len(t, invs, 1)
	assert.Equal(t, model.InvoicePaid, invs[0].Status)
}

func TestAppendContact(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendContact(ctx, model.Contact{
		ID:   "con_1",
		Name: "Acme Ltd",
		Type: model.ContactCustomer,
	}))

	cs, err := s.Contacts(ctx)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, "Acme Ltd", cs[0].Name)
}
