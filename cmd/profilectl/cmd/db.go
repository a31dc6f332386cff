package cmd

import (
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/templui/profiles/internal/config"
	"github.com/templui/profiles/internal/db"
)

// loadConfig reads the database settings from the environment, letting the
// --driver and --dsn flags win.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.LoadDatabase()

	if driver, _ := cmd.Flags().GetString("driver"); driver != "" {
		cfg.DBDriver = driver
	}
	if dsn, _ := cmd.Flags().GetString("dsn"); dsn != "" {
		cfg.DBConnection = dsn
	}
	return cfg
}

// openDatabase connects without migrating.
func openDatabase(cmd *cobra.Command) (*config.Config, *sqlx.DB, error) {
	cfg := loadConfig(cmd)
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, nil, err
	}
	return cfg, database, nil
}
