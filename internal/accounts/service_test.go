package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

func TestDefaultChart(t *testing.T) {
	chart := DefaultChart()
	assert.Len(t, chart, 12)

	seen := make(map[string]bool)
	for _, a := range chart {
		assert.False(t, seen[a.ID], "duplicate account id %s", a.ID)
		seen[a.ID] = true
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.Code)
	}
}

func TestGetExists(t *testing.T) {
	svc := NewService(DefaultChart())

	acct, ok := svc.Get(Receivable)
	assert.True(t, ok)
	assert.Equal(t, "Accounts Receivable", acct.Name)
	assert.Equal(t, model.AccountTypeAsset, acct.Type)

	_, ok = svc.Get("acc_nope")
	assert.False(t, ok)

	assert.True(t, svc.Exists(Sales))
	assert.False(t, svc.Exists("acc_nope"))
}

func TestByType(t *testing.T) {
	svc := NewService(DefaultChart())

	assets := svc.ByType(model.AccountTypeAsset)
	assert.Len(t, assets, 4)
	for _, a := range assets {
		assert.Equal(t, model.AccountTypeAsset, a.Type)
	}

	assert.Len(t, svc.ByType(model.AccountTypeExpense), 4)
	assert.Len(t, svc.ByType(model.AccountTypeLiability), 2)
	assert.Len(t, svc.ByType(model.AccountTypeEquity), 1)
	assert.Len(t, svc.ByType(model.AccountTypeRevenue), 1)
}

func TestNormalSides(t *testing.T) {
	for _, a := range DefaultChart() {
		switch a.Type {
		case model.AccountTypeAsset, model.AccountTypeExpense:
			assert.True(t, a.Type.DebitNormal(), a.ID)
		default:
			assert.False(t, a.Type.DebitNormal(), a.ID)
		}
	}
}
