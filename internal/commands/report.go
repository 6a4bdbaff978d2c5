package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/money"
)

func newReportCommand() *cobra.Command {
	var asOfStr string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print financial reports",
	}
	cmd.PersistentFlags().StringVar(&asOfStr, "as-of", "", "only count transactions up to this date (YYYY-MM-DD)")

	cmd.AddCommand(&cobra.Command{
		Use:   "pl",
		Short: "Profit & loss statement",
		Args:  cobra.NoArgs,
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

			pl, err := svc.ProfitAndLoss(cmd.Context(), asOf)
			if err != nil {
				return err
			}

			cur := cfg.Ledger.Currency
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Revenue:    %s\n", money.Format(pl.Revenue, cur))
			fmt.Fprintf(out, "Expenses:   %s\n", money.Format(pl.Expenses, cur))
			fmt.Fprintf(out, "Net profit: %s\n", money.Format(pl.NetProfit, cur))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "bs",
		Short: "Balance sheet",
		Args:  cobra.NoArgs,
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

			bs, err := svc.BalanceSheet(cmd.Context(), asOf)
			if err != nil {
				return err
			}

			cur := cfg.Ledger.Currency
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Assets:      %s\n", money.Format(bs.Assets, cur))
			fmt.Fprintf(out, "Liabilities: %s\n", money.Format(bs.Liabilities, cur))
			fmt.Fprintf(out, "Equity:      %s\n", money.Format(bs.Equity, cur))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "tb",
		Short: "Trial balance",
		Args:  cobra.NoArgs,
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

			tb, err := svc.TrialBalance(cmd.Context(), asOf)
			if err != nil {
				return err
			}

			cur := cfg.Ledger.Currency
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ACCOUNT\tDEBIT\tCREDIT")
			for _, row := range tb.Rows {
				debit, credit := "", ""
				if !row.Debit.IsZero() {
					debit = money.Format(row.Debit, cur)
				}
				if !row.Credit.IsZero() {
					credit = money.Format(row.Credit, cur)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", row.Account.Name, debit, credit)
			}
			fmt.Fprintf(w, "TOTAL\t%s\t%s\n", money.Format(tb.TotalDebit, cur), money.Format(tb.TotalCredit, cur))
			return w.Flush()
		},
	})

	return cmd
}
