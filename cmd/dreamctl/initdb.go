package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"dreamtraffic/internal/db"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Apply migrations and load the reference supply paths",
	RunE: func(cmd *cobra.Command, _ []string) error {
		skipSeed, _ := cmd.Flags().GetBool("skip-seed")

		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return err
		}
		logger.Info("migrations applied")
		if skipSeed {
			return nil
		}

		pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
		if err != nil {
			return err
		}
		defer pool.Close()
		if err = db.Seed(cmd.Context(), pool); err != nil {
			return err
		}
		logger.Info("seed data loaded", slog.Int("supply_paths", len(db.SupplyPaths)))
		return nil
	},
}

func init() {
	initDBCmd.Flags().Bool("skip-seed", false, "only apply migrations")
	rootCmd.AddCommand(initDBCmd)
}
