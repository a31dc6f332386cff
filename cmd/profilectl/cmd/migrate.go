package cmd

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/templui/profiles/internal/db"
)

func MigrateCmd() *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrate.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, database, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			defer database.Close()

			err = db.RunMigrations(database.DB, cfg.DBDriver)
			if err != nil {
				return err
			}
			return printVersion(cmd, cfg.DBDriver, database.DB)
		},
	})

	migrate.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, database, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			defer database.Close()

			err = db.MigrateDown(database.DB, cfg.DBDriver)
			if err != nil {
				return err
			}
			return printVersion(cmd, cfg.DBDriver, database.DB)
		},
	})

	migrate.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, database, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			defer database.Close()

			return printVersion(cmd, cfg.DBDriver, database.DB)
		},
	})

	return migrate
}

func printVersion(cmd *cobra.Command, driver string, database *sql.DB) error {
	version, err := db.Version(database, driver)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
	return nil
}
