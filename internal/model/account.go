package model

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// DebitNormal reports whether balances of this type grow on the debit side.
// Asset and expense accounts are debit-normal; liability, equity and revenue
// accounts are credit-normal.
func (t AccountType) DebitNormal() bool {
	return t == AccountTypeAsset || t == AccountTypeExpense
}

// Account is a named ledger bucket. The ID is immutable once created and the
// type fixes the sign convention used when deriving balances.
type Account struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        AccountType `json:"type"`
	Code        string      `json:"code"`
	Description string      `json:"description,omitempty"`
}
