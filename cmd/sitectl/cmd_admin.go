package main

import (
	"context"
	"errors"
	"fmt"

	"vitrine-backend/internal/auth"
	"vitrine-backend/internal/users"

	"github.com/spf13/cobra"
)

var adminName string

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage back-office access",
}

var adminAddCmd = &cobra.Command{
	Use:   "add <email>",
	Short: "Register an admin user who signs in with an emailed code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		svc, cleanup, err := openServices(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		id, err := addAdmin(ctx, svc.Users, args[0], adminName)
		if errors.Is(err, users.ErrEmailTaken) {
			return fmt.Errorf("%s is already registered", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "admin created: %s\n", id)
		return nil
	},
}

func init() {
	adminAddCmd.Flags().StringVar(&adminName, "name", "", "Display name")
	adminCmd.AddCommand(adminAddCmd)
}

func addAdmin(ctx context.Context, svc *users.Service, email, name string) (string, error) {
	return svc.Create(ctx, users.CreateRequest{Email: email, Name: name, Role: auth.RoleAdmin})
}
