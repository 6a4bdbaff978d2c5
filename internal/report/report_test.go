package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerbook-dev/ledgerbook/internal/accounts"
	"github.com/ledgerbook-dev/ledgerbook/internal/ledger"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

var chart = accounts.DefaultChart()

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func journal(t *testing.T, debit, credit, amount string) model.Transaction {
	t.Helper()
	tx, err := ledger.BuildJournal(ledger.JournalParams{
		Date:          model.NewDate(2025, time.January, 15),
		Description:   "test",
		DebitAccount:  debit,
		CreditAccount: credit,
		Amount:        dec(amount),
	})
	require.NoError(t, err)
	return tx
}

func TestProfitAndLossEmpty(t *testing.T) {
	pl := ComputeProfitAndLoss(chart, nil, nil)
	assert.True(t, pl.Revenue.IsZero())
	assert.True(t, pl.Expenses.IsZero())
	assert.True(t, pl.NetProfit.IsZero())
}

func TestProfitAndLoss(t *testing.T) {
	txs := []model.Transaction{
		journal(t, accounts.Receivable, accounts.Sales, "1000.00"),
		journal(t, accounts.Rent, accounts.Bank, "500.00"),
		journal(t, accounts.Utilities, accounts.Bank, "120.00"),
	}

	pl := ComputeProfitAndLoss(chart, txs, nil)
	assert.True(t, dec("1000").Equal(pl.Revenue))
	assert.True(t, dec("620").Equal(pl.Expenses))
	assert.True(t, dec("380").Equal(pl.NetProfit))
}

func TestBalanceSheetIdentity(t *testing.T) {
	// Any sequence of balanced transactions must satisfy
	// assets = liabilities + equity.
	txs := []model.Transaction{
		journal(t, accounts.Bank, accounts.Equity, "10000.00"),
		journal(t, accounts.Receivable, accounts.Sales, "1100.00"),
		journal(t, accounts.Rent, accounts.Bank, "500.00"),
		journal(t, accounts.Inventory, accounts.Payable, "750.00"),
		journal(t, accounts.COGS, accounts.Inventory, "300.00"),
	}

	bs := ComputeBalanceSheet(chart, txs, nil)
	assert.True(t, bs.Assets.Equal(bs.Liabilities.Add(bs.Equity)),
		"assets %s != liabilities %s + equity %s", bs.Assets, bs.Liabilities, bs.Equity)
}

func TestBalanceSheetEquityIncludesNetProfit(t *testing.T) {
	txs := []model.Transaction{
		journal(t, accounts.Bank, accounts.Equity, "1000.00"),
		journal(t, accounts.Receivable, accounts.Sales, "200.00"),
	}

	bs := ComputeBalanceSheet(chart, txs, nil)
	assert.True(t, dec("1200").Equal(bs.Equity), "equity = %s", bs.Equity)
	assert.True(t, dec("1200").Equal(bs.Assets))
	assert.True(t, bs.Liabilities.IsZero())
}

func TestTrialBalanceClosure(t *testing.T) {
	txs := []model.Transaction{
		journal(t, accounts.Bank, accounts.Equity, "5000.00"),
		journal(t, accounts.Receivable, accounts.Sales, "880.00"),
		journal(t, accounts.Rent, accounts.Bank, "500.00"),
		journal(t, accounts.General, accounts.Payable, "45.50"),
	}

	tb := ComputeTrialBalance(chart, txs, nil)
	assert.True(t, tb.TotalDebit.Equal(tb.TotalCredit),
		"debit total %s != credit total %s", tb.TotalDebit, tb.TotalCredit)

	// Totals must also be exactly the sum of the rows they were derived from.
	sumDebit := decimal.Zero
	sumCredit := decimal.Zero
	for _, row := range tb.Rows {
		assert.False(t, row.Debit.IsZero() && row.Credit.IsZero())
		assert.True(t, row.Debit.IsZero() || row.Credit.IsZero(),
			"row for %s has both columns set", row.Account.ID)
		sumDebit = sumDebit.Add(row.Debit)
		sumCredit = sumCredit.Add(row.Credit)
	}
	assert.True(t, sumDebit.Equal(tb.TotalDebit))
	assert.True(t, sumCredit.Equal(tb.TotalCredit))
}

func TestTrialBalanceSkipsZeroBalances(t *testing.T) {
	txs := []model.Transaction{
		journal(t, accounts.Rent, accounts.Bank, "500.00"),
	}

	tb := ComputeTrialBalance(chart, txs, nil)
	require.Len(t, tb.Rows, 2)
	for _, row := range tb.Rows {
		assert.Contains(t, []string{accounts.Rent, accounts.Bank}, row.Account.ID)
	}
}

func TestTrialBalanceAbnormalBalance(t *testing.T) {
	// Paying rent from the bank drives the bank asset negative; the abnormal
	// balance shows in the credit column.
	txs := []model.Transaction{
		journal(t, accounts.Rent, accounts.Bank, "500.00"),
	}

	tb := ComputeTrialBalance(chart, txs, nil)
	for _, row := range tb.Rows {
		switch row.Account.ID {
		case accounts.Rent:
			assert.True(t, dec("500").Equal(row.Debit))
			assert.True(t, row.Credit.IsZero())
		case accounts.Bank:
			assert.True(t, dec("500").Equal(row.Credit))
			assert.True(t, row.Debit.IsZero())
		}
	}
}

func TestReportsAsOfFilter(t *testing.T) {
	early, err := ledger.BuildJournal(ledger.JournalParams{
		Date:          model.NewDate(2025, time.January, 10),
		DebitAccount:  accounts.Rent,
		CreditAccount: accounts.Bank,
		Amount:        dec("100.00"),
	})
	require.NoError(t, err)
	late, err := ledger.BuildJournal(ledger.JournalParams{
		Date:          model.NewDate(2025, time.March, 10),
		DebitAccount:  accounts.Rent,
		CreditAccount: accounts.Bank,
		Amount:        dec("100.00"),
	})
	require.NoError(t, err)

	cutoff := model.NewDate(2025, time.January, 31)
	pl := ComputeProfitAndLoss(chart, []model.Transaction{late, early}, &cutoff)
	assert.True(t, dec("100").Equal(pl.Expenses))
}
