package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retirekit/income-engine/internal/api"
	"github.com/retirekit/income-engine/internal/calculation"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculators over HTTP",
	Long: `Starts a JSON API exposing the benefit, longevity, spending, and
projection calculators. Configuration comes from the environment: PORT,
READ_TIMEOUT, WRITE_TIMEOUT, DEBUG.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := api.LoadServerConfig()
		if err != nil {
			return fmt.Errorf("server config: %w", err)
		}
		server := api.NewServer(cfg)
		if cfg.Debug {
			server.SetLogger(calculation.StdLogger{})
		}
		return server.ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
