package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

// AccountBalance derives the signed balance of one account by replaying the
// full transaction history. Debit-normal accounts (asset, expense) accumulate
// debit minus credit; credit-normal accounts accumulate credit minus debit.
//
// asOf, when non-nil, excludes transactions dated after it. The replay is
// O(transactions) per call on purpose: the ledger is append-only and small,
// and recomputing from source beats keeping a cache honest.
func AccountBalance(account model.Account, txs []model.Transaction, asOf *model.Date) decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range txs {
		if asOf != nil && tx.Date.After(*asOf) {
			continue
		}
		entry, ok := tx.Entry(account.ID)
		if !ok {
			continue
		}
		if account.Type.DebitNormal() {
			balance = balance.Add(entry.Debit.Sub(entry.Credit))
		} else {
			balance = balance.Add(entry.Credit.Sub(entry.Debit))
		}
	}
	return balance
}
