package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/model"
	"github.com/ledgerbook-dev/ledgerbook/internal/money"
)

func newBalanceCommand() *cobra.Command {
	var asOfStr string

	cmd := &cobra.Command{
		Use:   "balance <account-id>",
		Short: "Print an account's derived balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asOf, err := parseAsOf(asOfStr)
			if err != nil {
				return err
			}

			svc, cfg, closeBook, err := openBook(cmd, nil)
			if err != nil {
				return err
			}
			defer closeBook()

			balance, err := svc.AccountBalance(cmd.Context(), args[0], asOf)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", args[0], money.Format(balance, cfg.Ledger.Currency))
			return nil
		},
	}

	cmd.Flags().StringVar(&asOfStr, "as-of", "", "only count transactions up to this date (YYYY-MM-DD)")

	return cmd
}

func parseAsOf(s string) (*model.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := model.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
