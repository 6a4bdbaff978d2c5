package model

import "github.com/shopspring/decimal"

// TransactionType classifies the business event behind a posting.
type TransactionType string

const (
	TransactionSales    TransactionType = "SALES"
	TransactionPurchase TransactionType = "PURCHASE"
	TransactionPayment  TransactionType = "PAYMENT"
	TransactionReceipt  TransactionType = "RECEIPT"
	TransactionJournal  TransactionType = "JOURNAL"
	TransactionContra   TransactionType = "CONTRA"
)

// LedgerEntry is one side of a transaction's effect on one account.
// Exactly one of Debit or Credit is non-zero.
type LedgerEntry struct {
	AccountID string          `json:"accountId"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// Transaction is an atomic, immutable double-entry posting. Once appended to
// the ledger it is never edited; corrections are made with an offsetting
// transaction.
type Transaction struct {
	ID          string          `json:"id"`
	Date        Date            `json:"date"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Entries     []LedgerEntry   `json:"entries"`
	ReferenceID string          `json:"referenceId,omitempty"` // e.g. invoice ID
}

// TotalDebits sums the debit side of all entries.
func (t Transaction) TotalDebits() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range t.Entries {
		sum = sum.Add(e.Debit)
	}
	return sum
}

// TotalCredits sums the credit side of all entries.
func (t Transaction) TotalCredits() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range t.Entries {
		sum = sum.Add(e.Credit)
	}
	return sum
}

// Entry returns the entry touching the given account, if any.
func (t Transaction) Entry(accountID string) (LedgerEntry, bool) {
	for _, e := range t.Entries {
		if e.AccountID == accountID {
			return e, true
		}
	}
	return LedgerEntry{}, false
}
