package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colisexpress/delivery-system/pkg/client"
	"github.com/colisexpress/delivery-system/pkg/client/auth"
)

func accessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "access",
		Short: "Manage roles and permissions (admin only)",
	}
	cmd.AddCommand(rolesListCmd(), rolesAddCmd(), permissionsListCmd(), permissionsAddCmd())
	return cmd
}

func rolesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List role definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireRoles("access roles", auth.RoleAdmin); err != nil {
				return err
			}

			roles, err := a.api.ListRoles(cmd.Context())
			if err != nil {
				return err
			}
			for _, role := range roles {
				fmt.Println(role.Name)
				for _, permission := range role.Permissions {
					fmt.Printf("  %s\n", permission.Name)
				}
			}
			return nil
		},
	}
}

func rolesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-role <name>",
		Short: "Define a new role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireRoles("access add-role", auth.RoleAdmin); err != nil {
				return err
			}

			role, err := a.api.CreateRole(cmd.Context(), client.NameInput{Name: args[0]})
			if err != nil {
				return err
			}
			fmt.Printf("Created role %s\n", role.Name)
			return nil
		},
	}
}

func permissionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "permissions",
		Short: "List permissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireRoles("access permissions", auth.RoleAdmin); err != nil {
				return err
			}

			permissions, err := a.api.ListPermissions(cmd.Context())
			if err != nil {
				return err
			}
			for _, permission := range permissions {
				if permission.Description != "" {
					fmt.Printf("%s  %s\n", permission.Name, permission.Description)
					continue
				}
				fmt.Println(permission.Name)
			}
			return nil
		},
	}
}

func permissionsAddCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add-permission <name>",
		Short: "Define a new permission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireRoles("access add-permission", auth.RoleAdmin); err != nil {
				return err
			}

			permission, err := a.api.CreatePermission(cmd.Context(), client.NameInput{
				Name:        args[0],
				Description: description,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created permission %s\n", permission.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Permission description")
	return cmd
}
