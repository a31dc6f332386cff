package main

import (
	"os"

	"github.com/templui/profiles/cmd/profilectl/cmd"
	"github.com/templui/profiles/internal/logger"

	"github.com/spf13/cobra"
)

func main() {
	flush := logger.Init(logger.Options{Development: true, Output: os.Stderr})
	defer flush()

	rootCmd := &cobra.Command{
		Use:          "profilectl",
		Short:        "Operator tools for the profiles app",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("driver", "", "database driver (sqlite or pgx), defaults to DB_DRIVER")
	rootCmd.PersistentFlags().String("dsn", "", "database connection string, defaults to DB_CONNECTION")

	rootCmd.AddCommand(cmd.MigrateCmd())
	rootCmd.AddCommand(cmd.UserCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
