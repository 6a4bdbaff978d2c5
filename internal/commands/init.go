package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/config"
	"github.com/ledgerbook-dev/ledgerbook/internal/store"
	"github.com/ledgerbook-dev/ledgerbook/internal/store/sqlite"
)

func newInitCommand() *cobra.Command {
	var name string
	var taxRate string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new book",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, name, taxRate)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&taxRate, "tax-rate", "0.10", "sales tax fraction applied at invoice issuance")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name, taxRate string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}

	cfg := config.Default(name)
	cfg.Ledger.TaxRate = taxRate
	if _, err := cfg.Ledger.TaxRateFraction(); err != nil {
		return err
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	// Create the database and seed the chart of accounts.
	kv, err := sqlite.Open(filepath.Join(dir, cfg.Storage.Path))
	if err != nil {
		return err
	}
	defer kv.Close()

	if err := store.New(kv).Init(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized book for %s at %s\n", name, dir)
	return nil
}
