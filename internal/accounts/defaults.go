package accounts

import "github.com/ledgerbook-dev/ledgerbook/internal/model"

// Well-known account IDs referenced by the transaction builders.
const (
	Cash       = "acc_cash"
	Bank       = "acc_bank"
	Receivable = "acc_ar"
	Inventory  = "acc_inventory"
	Payable    = "acc_ap"
	SalesTax   = "acc_sales_tax"
	Equity     = "acc_equity"
	Sales      = "acc_sales"
	COGS       = "acc_cogs"
	Rent       = "acc_rent"
	Utilities  = "acc_utilities"
	General    = "acc_general"
)

// DefaultChart returns the chart of accounts seeded on first use. The IDs are
// stable: transactions reference them forever, so entries here are never
// renumbered or removed.
func DefaultChart() []model.Account {
	return []model.Account{
		{ID: Cash, Name: "Cash on Hand", Type: model.AccountTypeAsset, Code: "1001"},
		{ID: Bank, Name: "Bank Account", Type: model.AccountTypeAsset, Code: "1002"},
		{ID: Receivable, Name: "Accounts Receivable", Type: model.AccountTypeAsset, Code: "1200"},
		{ID: Inventory, Name: "Inventory Asset", Type: model.AccountTypeAsset, Code: "1300"},
		{ID: Payable, Name: "Accounts Payable", Type: model.AccountTypeLiability, Code: "2000"},
		{ID: SalesTax, Name: "Sales Tax Payable", Type: model.AccountTypeLiability, Code: "2100"},
		{ID: Equity, Name: "Owner's Equity", Type: model.AccountTypeEquity, Code: "3000"},
		{ID: Sales, Name: "Sales Revenue", Type: model.AccountTypeRevenue, Code: "4000"},
		{ID: COGS, Name: "Cost of Goods Sold", Type: model.AccountTypeExpense, Code: "5000"},
		{ID: Rent, Name: "Rent Expense", Type: model.AccountTypeExpense, Code: "6001"},
		{ID: Utilities, Name: "Utilities", Type: model.AccountTypeExpense, Code: "6002"},
		{ID: General, Name: "General Expenses", Type: model.AccountTypeExpense, Code: "6003"},
	}
}
