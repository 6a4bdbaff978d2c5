package commands

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/book"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
	"github.com/ledgerbook-dev/ledgerbook/internal/money"
)

func newInvoiceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Work with invoices",
	}
	cmd.AddCommand(newInvoiceCreateCommand())
	return cmd
}

func newInvoiceCreateCommand() *cobra.Command {
	var (
		customer string
		items    []string
		dateStr  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Issue an invoice and post it to the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := book.IssueInvoiceParams{ContactName: customer}

			if dateStr != "" {
				date, err := model.ParseDate(dateStr)
				if err != nil {
					return err
				}
				params.Date = date
			}

			for _, raw := range items {
				item, err := parseItem(raw)
				if err != nil {
					return err
				}
				params.Items = append(params.Items, item)
			}

			svc, cfg, closeBook, err := openBook(cmd, nil)
			if err != nil {
				return err
			}
			defer closeBook()

			inv, err := svc.IssueInvoice(cmd.Context(), params)
			if err != nil {
				return err
			}

			cur := cfg.Ledger.Currency
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Issued %s to %s (due %s)\n", inv.Number, inv.ContactName, inv.DueDate)
			fmt.Fprintf(out, "  Subtotal: %s\n", money.Format(inv.Subtotal, cur))
			fmt.Fprintf(out, "  Tax:      %s\n", money.Format(inv.Tax, cur))
			fmt.Fprintf(out, "  Total:    %s\n", money.Format(inv.Total, cur))
			return nil
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "customer name (required)")
	cmd.Flags().StringArrayVar(&items, "item", nil, "billed line as name:quantity:rate (repeatable, required)")
	cmd.Flags().StringVar(&dateStr, "date", "", "issue date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("item")

	return cmd
}

// parseItem splits "Consulting:2:150.00" into an item. The name may contain
// colons; quantity and rate are the last two segments.
func parseItem(raw string) (book.InvoiceItemParams, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 3 {
		return book.InvoiceItemParams{}, fmt.Errorf("invalid item %q: want name:quantity:rate", raw)
	}

	name := strings.Join(parts[:len(parts)-2], ":")
	qty, err := decimal.NewFromString(parts[len(parts)-2])
	if err != nil {
		return book.InvoiceItemParams{}, fmt.Errorf("invalid quantity in item %q: %w", raw, err)
	}
	rate, err := decimal.NewFromString(parts[len(parts)-1])
	if err != nil {
		return book.InvoiceItemParams{}, fmt.Errorf("invalid rate in item %q: %w", raw, err)
	}

	return book.InvoiceItemParams{Name: name, Quantity: qty, Rate: rate}, nil
}
