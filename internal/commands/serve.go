package commands

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerbook-dev/ledgerbook/internal/api"
	"github.com/ledgerbook-dev/ledgerbook/internal/config"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := config.LoadEnv()
			if err != nil {
				return err
			}

			svc, cfg, closeBook, err := openBook(cmd, env)
			if err != nil {
				return err
			}
			defer closeBook()

			if addr != "" {
				cfg.Server.Addr = addr
			}

			log := slog.Default()
			router := api.NewRouter(api.NewHandler(svc, log))

			srv := &http.Server{
				Addr:         cfg.Server.Addr,
				Handler:      router,
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 30 * time.Second,
			}

			log.Info("listening", "addr", cfg.Server.Addr, "business", cfg.Business.Name)
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config and environment)")

	return cmd
}
