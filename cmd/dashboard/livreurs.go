package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/colisexpress/delivery-system/pkg/client"
	"github.com/colisexpress/delivery-system/pkg/client/auth"
)

func livreursCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "livreurs",
		Short: "Manage livreurs (staff only)",
	}
	cmd.AddCommand(livreursListCmd(), livreursCreateCmd(), livreursDeleteCmd())
	return cmd
}

func livreursListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List livreurs",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireRoles("livreurs list", auth.RoleAdmin, auth.RoleManager); err != nil {
				return err
			}

			items, err := a.api.ListLivreurs(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("no livreurs")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPHONE\tVEHICULE\tZONE")
			for _, l := range items {
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\n",
					l.ID, l.Prenom, l.Nom, l.Telephone, l.Vehicule, l.ZoneID)
			}
			return w.Flush()
		},
	}
}

func livreursCreateCmd() *cobra.Command {
	var input client.LivreurInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a livreur",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireRoles("livreurs create", auth.RoleAdmin, auth.RoleManager); err != nil {
				return err
			}

			livreur, err := a.api.CreateLivreur(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Printf("Created livreur %s (%s %s)\n", livreur.ID, livreur.Prenom, livreur.Nom)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Nom, "nom", "", "Last name")
	cmd.Flags().StringVar(&input.Prenom, "prenom", "", "First name")
	cmd.Flags().StringVar(&input.Telephone, "telephone", "", "Phone number")
	cmd.Flags().StringVar(&input.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&input.Vehicule, "vehicule", "", "Vehicle")
	cmd.Flags().StringVar(&input.ZoneID, "zone", "", "Delivery zone id")
	return cmd
}

func livreursDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a livreur",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireRoles("livreurs delete", auth.RoleAdmin, auth.RoleManager); err != nil {
				return err
			}

			if err := a.api.DeleteLivreur(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Livreur removed")
			return nil
		},
	}
}
