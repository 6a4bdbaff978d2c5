// Package commands wires the CLI. Each command loads the book named by
// --book, runs one operation against the service layer, and prints a plain
// result; nothing here contains accounting logic.
package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/book"
	"github.com/ledgerbook-dev/ledgerbook/internal/buildinfo"
	"github.com/ledgerbook-dev/ledgerbook/internal/config"
	"github.com/ledgerbook-dev/ledgerbook/internal/store"
	"github.com/ledgerbook-dev/ledgerbook/internal/store/sqlite"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ledgerbook",
		Short:   "Double-entry bookkeeping for small businesses",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("book", ".", "directory containing "+config.FileName)

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newTxCommand())
	rootCmd.AddCommand(newBalanceCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newInvoiceCommand())

	return rootCmd
}

// openBook loads the config and opens the seeded store for a command run.
// Non-nil env overrides are applied before the database is opened. The
// returned close func releases the database.
func openBook(cmd *cobra.Command, env *config.Env) (*book.Service, *config.Config, func() error, error) {
	dir, err := cmd.Flags().GetString("book")
	if err != nil {
		return nil, nil, nil, err
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading book config (run 'ledgerbook init' first?): %w", err)
	}
	if env != nil {
		env.Apply(cfg)
	}

	taxRate, err := cfg.Ledger.TaxRateFraction()
	if err != nil {
		return nil, nil, nil, err
	}

	dbPath := cfg.Storage.Path
	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(dir, dbPath)
	}

	kv, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, nil, nil, err
	}

	st := store.New(kv)
	if err := st.Init(cmd.Context()); err != nil {
		kv.Close()
		return nil, nil, nil, err
	}

	return book.NewService(st, taxRate), cfg, kv.Close, nil
}
