// Package id generates the opaque identifiers used across the ledger
// collections. IDs are prefixed by record kind ("txn_", "inv_", ...) so a
// bare ID in a log line or reference field is self-describing.
package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Record kind prefixes.
const (
	PrefixTransaction = "txn"
	PrefixInvoice     = "inv"
	PrefixContact     = "con"
)

// New returns a collision-resistant ID like "txn_7f9c2ba4e88f".
// The random part is the first 12 hex chars of a UUIDv4, which is plenty for
// a single-book ledger while keeping references readable.
func New(prefix string) string {
	u := uuid.New()
	hex := strings.ReplaceAll(u.String(), "-", "")
	return prefix + "_" + hex[:12]
}

// Kind returns the prefix of an ID, or "" if it has none.
func Kind(id string) string {
	i := strings.IndexByte(id, '_')
	if i <= 0 {
		return ""
	}
	return id[:i]
}

// FormatInvoiceNumber returns a display number like "INV-0042".
func FormatInvoiceNumber(seq int) string {
	return fmt.Sprintf("INV-%04d", seq)
}
