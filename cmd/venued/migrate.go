package main

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-VenueService/migrations"
	"github.com/m04kA/SMC-VenueService/pkg/migrator"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Применить SQL-миграции схемы",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := initApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			applied, err := migrator.New(app.DB, migrations.FS, app.Logger).Up(cmd.Context())
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				app.Logger.Info("Schema is up to date")
				return nil
			}
			app.Logger.Info("Applied %d migration(s): %v", len(applied), applied)
			return nil
		},
	}
}
