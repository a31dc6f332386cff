package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/templui/profiles/internal/db"
	"github.com/templui/profiles/internal/repository"
	"github.com/templui/profiles/internal/service"
	"github.com/templui/profiles/internal/validation"
)

func UserCmd() *cobra.Command {
	user := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}

	user.AddCommand(userCreateCmd())
	user.AddCommand(userPromoteCmd())

	return user
}

func userCreateCmd() *cobra.Command {
	var (
		in      validation.RegistrationInput
		isAdmin bool
	)

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a password account",
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

			// Tokens are never issued here, so no secret is needed.
			authService := service.NewAuthService(repository.NewUserRepository(database), "", 0, false, cfg.AdminEmail)

			created, err := authService.CreateUser(cmd.Context(), in, isAdmin)
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s) admin=%t\n", created.Email, created.ID, created.IsAdmin)
			return nil
		},
	}

	create.Flags().StringVar(&in.Email, "email", "", "account email")
	create.Flags().StringVar(&in.Name, "name", "", "display name")
	create.Flags().StringVar(&in.Password, "password", "", "password (12 to 72 characters)")
	create.Flags().BoolVar(&isAdmin, "admin", false, "grant administrator privilege")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("password")

	return create
}

func userPromoteCmd() *cobra.Command {
	var (
		email  string
		revoke bool
	)

	promote := &cobra.Command{
		Use:   "promote",
		Short: "Grant or revoke administrator privilege",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, database, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			defer database.Close()

			userService := service.NewUserService(repository.NewUserRepository(database))

			updated, err := userService.SetAdmin(cmd.Context(), email, !revoke)
			if err != nil {
				return fmt.Errorf("promote user: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s admin=%t\n", updated.Email, updated.IsAdmin)
			return nil
		},
	}

	promote.Flags().StringVar(&email, "email", "", "account email")
	promote.Flags().BoolVar(&revoke, "revoke", false, "remove administrator privilege instead")
	_ = promote.MarkFlagRequired("email")

	return promote
}
