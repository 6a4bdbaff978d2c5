package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/ledger"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

func newTxCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Work with ledger transactions",
	}
	cmd.AddCommand(newTxAddCommand())
	return cmd
}

func newTxAddCommand() *cobra.Command {
	var (
		debit       string
		credit      string
		amountStr   string
		description string
		dateStr     string
		reference   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a manual journal entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amountStr, err)
			}

			var date model.Date
			if dateStr != "" {
				if date, err = model.ParseDate(dateStr); err != nil {
					return err
				}
			}

			svc, _, closeBook, err := openBook(cmd, nil)
			if err != nil {
				return err
			}
			defer closeBook()

			tx, err := svc.RecordJournal(cmd.Context(), ledger.JournalParams{
				Date:          date,
				Description:   description,
				DebitAccount:  debit,
				CreditAccount: credit,
				Amount:        amount,
				Reference:     reference,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s: Dr %s / Cr %s %s on %s\n",
				tx.ID, debit, credit, amount.StringFixed(2), tx.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&debit, "debit", "", "account to debit (required)")
	cmd.Flags().StringVar(&credit, "credit", "", "account to credit (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount (required)")
	cmd.Flags().StringVar(&description, "desc", "", "description")
	cmd.Flags().StringVar(&dateStr, "date", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&reference, "ref", "", "source document reference")
	_ = cmd.MarkFlagRequired("debit")
	_ = cmd.MarkFlagRequired("credit")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
