package model

import "github.com/shopspring/decimal"

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "DRAFT"
	InvoiceSent    InvoiceStatus = "SENT"
	InvoicePaid    InvoiceStatus = "PAID"
	InvoiceOverdue InvoiceStatus = "OVERDUE"
)

// InvoiceItem is one billed line: Amount = Quantity * Rate.
type InvoiceItem struct {
	ItemName string          `json:"itemName"`
	Quantity decimal.Decimal `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
}

// Invoice is a billing document. Issuing one produces exactly one linked
// transaction debiting receivables for the total and crediting revenue and
// sales tax payable. After creation only the status changes.
type Invoice struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	Date          Date            `json:"date"`
	DueDate       Date            `json:"dueDate"`
	ContactID     string          `json:"contactId"`
	ContactName   string          `json:"contactName"`
	Items         []InvoiceItem   `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Status        InvoiceStatus   `json:"status"`
	TransactionID string          `json:"transactionId,omitempty"`
}
