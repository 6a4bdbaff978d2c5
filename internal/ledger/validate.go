// Package ledger holds the double-entry core: transaction validation, the
// balance engine, and builders that construct balanced transactions from
// business events. Everything here is pure; persistence lives in the store.
package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

// ErrValidation is the sentinel wrapped by every validation failure, so
// callers can test with errors.Is without caring which rule fired.
var ErrValidation = errors.New("validation failed")

// Rules checked by ValidateTransaction.
const (
	RuleMinEntries     = "min-entries"
	RuleUnbalanced     = "unbalanced"
	RuleOneSided       = "one-sided"
	RuleNegativeAmount = "negative-amount"
	RulePrecision      = "precision"
	RuleUnknownAccount = "unknown-account"
	RuleMissingDate    = "missing-date"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Rule        string
	TxID        string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Rule, e.TxID, e.Description)
}

// Invalid combines validation errors into a single error wrapping
// ErrValidation. Returns nil for an empty slice.
func Invalid(errs []ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

// AccountResolver tests whether an account ID exists in the chart of
// accounts. *accounts.Service satisfies it.
type AccountResolver interface {
	Exists(id string) bool
}

var hundred = decimal.NewFromInt(100)

// ValidateTransaction enforces the double-entry invariants on a transaction
// before it may be persisted:
//
//  1. at least two entries
//  2. sum of debits equals sum of credits, exactly
//  3. each entry has exactly one non-zero side
//  4. no negative debit or credit
//  5. amounts carry at most two decimal places
//  6. every entry references a known account
//  7. the date is set
func ValidateTransaction(tx model.Transaction, accounts AccountResolver) []ValidationError {
	var errs []ValidationError

	if len(tx.Entries) < 2 {
		errs = append(errs, ValidationError{
			Rule:        RuleMinEntries,
			TxID:        tx.ID,
			Description: fmt.Sprintf("double entry requires at least 2 entries, got %d", len(tx.Entries)),
		})
	}

	totalDebit := tx.TotalDebits()
	totalCredit := tx.TotalCredits()
	if !totalDebit.Equal(totalCredit) {
		errs = append(errs, ValidationError{
			Rule:        RuleUnbalanced,
			TxID:        tx.ID,
			Description: fmt.Sprintf("debits (%s) != credits (%s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
		})
	}

	for i, e := range tx.Entries {
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			errs = append(errs, ValidationError{
				Rule:        RuleNegativeAmount,
				TxID:        tx.ID,
				Description: fmt.Sprintf("entry %d on %s has a negative amount", i, e.AccountID),
			})
		}

		hasDebit := !e.Debit.IsZero()
		hasCredit := !e.Credit.IsZero()
		if hasDebit == hasCredit {
			errs = append(errs, ValidationError{
				Rule:        RuleOneSided,
				TxID:        tx.ID,
				Description: fmt.Sprintf("entry %d on %s must have exactly one of debit or credit", i, e.AccountID),
			})
		}

		if !e.Debit.IsZero() && !e.Debit.Mul(hundred).Equal(e.Debit.Mul(hundred).Floor()) {
			errs = append(errs, ValidationError{
				Rule:        RulePrecision,
				TxID:        tx.ID,
				Description: fmt.Sprintf("debit %s has more than 2 decimal places", e.Debit),
			})
		}
		if !e.Credit.IsZero() && !e.Credit.Mul(hundred).Equal(e.Credit.Mul(hundred).Floor()) {
			errs = append(errs, ValidationError{
				Rule:        RulePrecision,
				TxID:        tx.ID,
				Description: fmt.Sprintf("credit %s has more than 2 decimal places", e.Credit),
			})
		}

		if accounts != nil && !accounts.Exists(e.AccountID) {
			errs = append(errs, ValidationError{
				Rule:        RuleUnknownAccount,
				TxID:        tx.ID,
				Description: fmt.Sprintf("unknown account %q", e.AccountID),
			})
		}
	}

	if tx.Date.IsZero() {
		errs = append(errs, ValidationError{
			Rule:        RuleMissingDate,
			TxID:        tx.ID,
			Description: "transaction date is required",
		})
	}

	return errs
}
