// Package cmd - serve command
package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tfcost/api"
	"tfcost/internal/config"
	"tfcost/internal/logging"
)

var serveAddr string

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the pricing HTTP API",
	Long: `Serve the pricing HTTP API:

  GET  /health         liveness
  GET  /api/pricing    readiness
  POST /api/pricing    price normalized resources
  POST /api/parse      parse Terraform text
  POST /api/estimate   parse and price Terraform text`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		c, err := newComponents(ctx, cfg)
		if err != nil {
			return err
		}

		handler := api.NewHandler(c.parser, c.classifier, c.estimator, cfg.AWS.DefaultRegion, logging.Named("api"))
		server := api.NewServer(api.Config{
			Addr:            firstNonEmpty(serveAddr, cfg.Server.Addr),
			ShutdownTimeout: cfg.Server.ShutdownTimeout(),
			Version:         Version,
		}, handler, logging.Named("http"))

		defer logging.Sync()
		return server.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
}
