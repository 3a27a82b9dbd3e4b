package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kinship-dev/kinship/internal/server"
	"github.com/kinship-dev/kinship/pkg/config"
)

// newServeCmd creates the serve command, which runs the HTTP API server
// that backs the web UI. The server holds all graphs in memory; stopping it
// discards every session.
func newServeCmd() *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the kinship HTTP API server",
		Long: `Run the HTTP API server backing the kinship web UI.

Sessions are held in memory only and swept after an idle TTL. Settings come
from an optional TOML config file; --addr overrides the configured listen
address.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			logger := newLogger(os.Stderr, parseLevel(cfg.Log.Level))
			if l := loggerFromContext(c.Context()); l.GetLevel() < logger.GetLevel() {
				logger = l // --verbose wins over the configured level
			}
			return server.New(cfg, logger).ListenAndServe(c.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to TOML config file")
	return cmd
}
