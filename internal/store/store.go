// Package store owns the canonical record collections: accounts,
// transactions, invoices and contacts. Each collection is read from the
// persistence layer in full on every query and written back in full on every
// mutation, so callers always see snapshots and never share live state.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/ledgerbook-dev/ledgerbook/internal/accounts"
	"github.com/ledgerbook-dev/ledgerbook/internal/ledger"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

// Keys under which the collections persist.
const (
	keyAccounts     = "ab_accounts"
	keyTransactions = "ab_transactions"
	keyContacts     = "ab_contacts"
	keyInvoices     = "ab_invoices"
)

// Store is the single source of truth for the ledger collections. One lock
// serializes every read-modify-write sequence: the book has exactly one
// logical writer, it just may be reached from multiple goroutines.
type Store struct {
	mu sync.Mutex
	kv KV
}

// New creates a Store over the given persistence backend. Call Init before
// first use.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// Init seeds the chart of accounts and empty collections on first ever use.
// It is idempotent: existing data is left untouched.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok, err := s.kv.Get(ctx, keyAccounts)
	if err != nil {
		return fmt.Errorf("checking bootstrap state: %w", err)
	}
	if !ok {
		if err := s.put(ctx, keyAccounts, accounts.DefaultChart()); err != nil {
			return err
		}
	}

	for key, empty := range map[string]any{
		keyTransactions: []model.Transaction{},
		keyContacts:     []model.Contact{},
		keyInvoices:     []model.Invoice{},
	} {
		_, ok, err := s.kv.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("checking bootstrap state: %w", err)
		}
		if !ok {
			if err := s.put(ctx, key, empty); err != nil {
				return err
			}
		}
	}
	return nil
}

// Accounts returns a snapshot of the chart of accounts.
func (s *Store) Accounts(ctx context.Context) ([]model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var accts []model.Account
	if err := s.get(ctx, keyAccounts, &accts); err != nil {
		return nil, err
	}
	return accts, nil
}

// Transactions returns a snapshot of the transaction history, ordered by
// date descending with ties in insertion order.
func (s *Store) Transactions(ctx context.Context) ([]model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transactionsLocked(ctx)
}

// Invoices returns a snapshot of all invoices.
func (s *Store) Invoices(ctx context.Context) ([]model.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var invs []model.Invoice
	if err := s.get(ctx, keyInvoices, &invs); err != nil {
		return nil, err
	}
	return invs, nil
}

// Contacts returns a snapshot of all contacts.
func (s *Store) Contacts(ctx context.Context) ([]model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cs []model.Contact
	if err := s.get(ctx, keyContacts, &cs); err != nil {
		return nil, err
	}
	return cs, nil
}

// AppendTransaction validates the double-entry invariants against the stored
// chart of accounts and, on success, inserts the transaction keeping the
// collection sorted by date descending. A validation failure leaves the
// collection untouched.
func (s *Store) AppendTransaction(ctx context.Context, tx model.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var accts []model.Account
	if err := s.get(ctx, keyAccounts, &accts); err != nil {
		return err
	}

	if errs := ledger.ValidateTransaction(tx, accounts.NewService(accts)); len(errs) > 0 {
		return ledger.Invalid(errs)
	}

	txs, err := s.transactionsLocked(ctx)
	if err != nil {
		return err
	}

	txs = append(txs, tx)
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})

	return s.put(ctx, keyTransactions, txs)
}

// UpsertInvoice inserts a new invoice or replaces an existing one matched by
// ID.
func (s *Store) UpsertInvoice(ctx context.Context, inv model.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var invs []model.Invoice
	if err := s.get(ctx, keyInvoices, &invs); err != nil {
		return err
	}

	replaced := false
	for i := range invs {
		if invs[i].ID == inv.ID {
			invs[i] = inv
			replaced = true
			break
		}
	}
	if !replaced {
		invs = append(invs, inv)
	}

	return s.put(ctx, keyInvoices, invs)
}

// AppendContact inserts a contact.
func (s *Store) AppendContact(ctx context.Context, contact model.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cs []model.Contact
	if err := s.get(ctx, keyContacts, &cs); err != nil {
		return err
	}

	cs = append(cs, contact)
	return s.put(ctx, keyContacts, cs)
}

func (s *Store) transactionsLocked(ctx context.Context) ([]model.Transaction, error) {
	var txs []model.Transaction
	if err := s.get(ctx, keyTransactions, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// get decodes the collection at key into v. A missing key decodes as the
// zero collection: every read produces a fresh copy, so callers can mutate
// freely without touching store state.
func (s *Store) get(ctx context.Context, key string, v any) error {
	data, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("reading %s: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	return nil
}

func (s *Store) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.kv.Put(ctx, key, data); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}
