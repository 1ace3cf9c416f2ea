package main

import (
	"log/slog"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"dreamtraffic/internal/config"
)

var (
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dreamctl",
	Short: "Operator tooling for the dreamtraffic service",
	Long: "Inspects supply-path economics, simulates exchange routing and renders VAST tags " +
		"from the built-in catalogs, and prepares the database for the service.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := config.Load()
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		cfg = c
		logger = slog.New(cfg.Log.Handler(cmd.ErrOrStderr())).With(slog.String("command", cmd.Name()))
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
