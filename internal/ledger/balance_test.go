package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerbook-dev/ledgerbook/internal/accounts"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

func account(id string) model.Account {
	a, ok := chart.Get(id)
	if !ok {
		panic("unknown test account " + id)
	}
	return a
}

func TestAccountBalanceDebitNormal(t *testing.T) {
	txs := []model.Transaction{
		balancedTx(accounts.Rent, accounts.Bank, "500.00"),
	}

	rent := AccountBalance(account(accounts.Rent), txs, nil)
	bank := AccountBalance(account(accounts.Bank), txs, nil)

	assert.True(t, dec("500").Equal(rent), "rent = %s", rent)
	assert.True(t, dec("-500").Equal(bank), "bank = %s", bank)
}

func TestAccountBalanceCreditNormal(t *testing.T) {
	txs := []model.Transaction{
		balancedTx(accounts.Receivable, accounts.Sales, "200.00"),
	}

	sales := AccountBalance(account(accounts.Sales), txs, nil)
	ar := AccountBalance(account(accounts.Receivable), txs, nil)

	assert.True(t, dec("200").Equal(sales))
	assert.True(t, dec("200").Equal(ar))
}

func TestAccountBalanceNoActivity(t *testing.T) {
	balance := AccountBalance(account(accounts.Equity), nil, nil)
	assert.True(t, balance.IsZero())
}

func TestAccountBalanceAsOf(t *testing.T) {
	early := balancedTx(accounts.Rent, accounts.Bank, "100.00")
	early.Date = date(2025, time.January, 10)
	late := balancedTx(accounts.Rent, accounts.Bank, "50.00")
	late.Date = date(2025, time.February, 10)

	txs := []model.Transaction{late, early}

	cutoff := date(2025, time.January, 31)
	assert.True(t, dec("100").Equal(AccountBalance(account(accounts.Rent), txs, &cutoff)))

	onDate := date(2025, time.February, 10)
	assert.True(t, dec("150").Equal(AccountBalance(account(accounts.Rent), txs, &onDate)))

	assert.True(t, dec("150").Equal(AccountBalance(account(accounts.Rent), txs, nil)))
}

func TestAccountBalanceDeterministic(t *testing.T) {
	txs := []model.Transaction{
		balancedTx(accounts.Rent, accounts.Bank, "500.00"),
		balancedTx(accounts.Receivable, accounts.Sales, "220.00"),
	}

	first := AccountBalance(account(accounts.Bank), txs, nil)
	second := AccountBalance(account(accounts.Bank), txs, nil)
	assert.True(t, first.Equal(second))
}
