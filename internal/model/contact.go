package model

// ContactType distinguishes customers from suppliers.
type ContactType string

const (
	ContactCustomer ContactType = "CUSTOMER"
	ContactSupplier ContactType = "SUPPLIER"
)

// Contact is a billing counterparty.
type Contact struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email,omitempty"`
	Phone   string      `json:"phone,omitempty"`
	Type    ContactType `json:"type"`
	Address string      `json:"address,omitempty"`
}
