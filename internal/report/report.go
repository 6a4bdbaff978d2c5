// Package report aggregates per-account balances into the three standard
// financial statements. All functions are pure over a chart of accounts and
// a transaction history snapshot.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerbook-dev/ledgerbook/internal/ledger"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

// ProfitAndLoss summarizes revenue against expenses.
type ProfitAndLoss struct {
	Revenue   decimal.Decimal `json:"revenue"`
	Expenses  decimal.Decimal `json:"expenses"`
	NetProfit decimal.Decimal `json:"netProfit"`
}

// BalanceSheet summarizes the accounting equation. Equity includes the
// current-period net profit, so Assets = Liabilities + Equity holds whenever
// the underlying transactions balance.
type BalanceSheet struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
}

// TrialBalanceRow is one account's balance split into its display column.
// Exactly one of Debit/Credit is non-zero; a balance on the account's normal
// side lands in that side's column, an abnormal balance in the opposite one.
type TrialBalanceRow struct {
	Account model.Account   `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// TrialBalance lists every account with a non-zero balance. Totals are sums
// over the already-split rows, so the report balances exactly when the rows
// do.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// ComputeProfitAndLoss sums revenue and expense balances as of the given
// date (nil for the full history).
func ComputeProfitAndLoss(accts []model.Account, txs []model.Transaction, asOf *model.Date) ProfitAndLoss {
	revenue := decimal.Zero
	expenses := decimal.Zero
	for _, a := range accts {
		switch a.Type {
		case model.AccountTypeRevenue:
			revenue = revenue.Add(ledger.AccountBalance(a, txs, asOf))
		case model.AccountTypeExpense:
			expenses = expenses.Add(ledger.AccountBalance(a, txs, asOf))
		}
	}
	return ProfitAndLoss{
		Revenue:   revenue,
		Expenses:  expenses,
		NetProfit: revenue.Sub(expenses),
	}
}

// ComputeBalanceSheet sums asset, liability and equity balances, rolling the
// current-period net profit into equity as undistributed earnings.
func ComputeBalanceSheet(accts []model.Account, txs []model.Transaction, asOf *model.Date) BalanceSheet {
	pl := ComputeProfitAndLoss(accts, txs, asOf)

	assets := decimal.Zero
	liabilities := decimal.Zero
	equity := decimal.Zero
	for _, a := range accts {
		switch a.Type {
		case model.AccountTypeAsset:
			assets = assets.Add(ledger.AccountBalance(a, txs, asOf))
		case model.AccountTypeLiability:
			liabilities = liabilities.Add(ledger.AccountBalance(a, txs, asOf))
		case model.AccountTypeEquity:
			equity = equity.Add(ledger.AccountBalance(a, txs, asOf))
		}
	}
	return BalanceSheet{
		Assets:      assets,
		Liabilities: liabilities,
		Equity:      equity.Add(pl.NetProfit),
	}
}

// ComputeTrialBalance splits each non-zero account balance into its debit or
// credit column once, then derives the totals from those rows.
func ComputeTrialBalance(accts []model.Account, txs []model.Transaction, asOf *model.Date) TrialBalance {
	tb := TrialBalance{
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, a := range accts {
		balance := ledger.AccountBalance(a, txs, asOf)
		if balance.IsZero() {
			continue
		}

		row := TrialBalanceRow{Account: a}
		normalIsDebit := a.Type.DebitNormal()
		if balance.IsPositive() == normalIsDebit {
			row.Debit = balance.Abs()
		} else {
			row.Credit = balance.Abs()
		}

		tb.Rows = append(tb.Rows, row)
		tb.TotalDebit = tb.TotalDebit.Add(row.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(row.Credit)
	}
	return tb
}
