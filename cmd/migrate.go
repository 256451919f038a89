package cmd

import (
	"deliverytracker/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg.LogLevel)

		db, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		if err = postgres.Migrate(db); err != nil {
			return err
		}

		logger.InfoContext(cmd.Context(), "Database schema is up to date")
		return nil
	},
}
