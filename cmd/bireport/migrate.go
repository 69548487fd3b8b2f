package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/GTDGit/gtd_bi/internal/database"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create both schemas and load the demo data",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			db, err := a.connect()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.RunMigrations(db.DB, a.cfg.MigrationsPath); err != nil {
				return err
			}
			log.Info().Str("source", a.cfg.MigrationsPath).Msg("migrations completed successfully")
			return nil
		},
	}
}
