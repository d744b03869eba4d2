package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/colisexpress/delivery-system/pkg/client"
	"github.com/colisexpress/delivery-system/pkg/client/auth"
)

func clientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Manage sender accounts (staff only)",
	}
	cmd.AddCommand(clientsListCmd(), clientsCreateCmd(), clientsDeleteCmd())
	return cmd
}

func clientsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sender accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireRoles("clients list", auth.RoleAdmin, auth.RoleManager); err != nil {
				return err
			}

			items, err := a.api.ListClients(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("no clients")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE")
			for _, account := range items {
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\n",
					account.ID, account.Prenom, account.Nom, account.Email, account.Telephone)
			}
			return w.Flush()
		},
	}
}

func clientsCreateCmd() *cobra.Command {
	var input client.ClientAccountInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a sender account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireRoles("clients create", auth.RoleAdmin, auth.RoleManager); err != nil {
				return err
			}

			account, err := a.api.CreateClient(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Printf("Created client %s (%s %s)\n", account.ID, account.Prenom, account.Nom)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Nom, "nom", "", "Last name")
	cmd.Flags().StringVar(&input.Prenom, "prenom", "", "First name")
	cmd.Flags().StringVar(&input.Telephone, "telephone", "", "Phone number")
	cmd.Flags().StringVar(&input.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&input.Adresse, "adresse", "", "Postal address")
	return cmd
}

func clientsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a sender account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireRoles("clients delete", auth.RoleAdmin, auth.RoleManager); err != nil {
				return err
			}

			if err := a.api.DeleteClient(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Client removed")
			return nil
		},
	}
}
