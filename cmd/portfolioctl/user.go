package main

import (
	"fmt"

	"github.com/hafiz-aliAwj/portfolio/internal/models"
	"github.com/hafiz-aliAwj/portfolio/internal/services"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
	"github.com/spf13/cobra"
)

var createUserReq dto.RegisterRequest
var createUserRole string

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage admin accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account with an explicit role",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateRole(createUserRole); err != nil {
			return err
		}

		ctx := cmd.Context()
		db, err := connect(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		user, err := services.NewUserService(db).Create(ctx, createUserReq, createUserRole)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s (%s)\n", user.Role, user.Username, user.ID)
		return nil
	},
}

var userPromoteCmd = &cobra.Command{
	Use:   "promote <username>",
	Short: "Give an existing account the admin role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, err := connect(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := services.NewUserService(db).Promote(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to promote %s: %w", args[0], err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully promoted %s to admin\n", args[0])
		return nil
	},
}

func init() {
	flags := userCreateCmd.Flags()
	flags.StringVar(&createUserReq.Username, "username", "", "login name (required)")
	flags.StringVar(&createUserReq.Name, "name", "", "display name (required)")
	flags.StringVar(&createUserReq.Email, "email", "", "email address (required)")
	flags.StringVar(&createUserReq.Password, "password", "", "password (required)")
	flags.StringVar(&createUserRole, "role", models.RoleAdmin, "admin or editor")
	for _, name := range []string{"username", "name", "email", "password"} {
		_ = userCreateCmd.MarkFlagRequired(name)
	}

	userCmd.AddCommand(userCreateCmd, userPromoteCmd)
	rootCmd.AddCommand(userCmd)
}

func validateRole(role string) error {
	switch role {
	case models.RoleAdmin, models.RoleEditor:
		return nil
	default:
		return fmt.Errorf("role must be %s or %s, got %q", models.RoleAdmin, models.RoleEditor, role)
	}
}
