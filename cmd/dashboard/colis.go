package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/colisexpress/delivery-system/pkg/client"
	"github.com/colisexpress/delivery-system/pkg/client/auth"
)

func colisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colis",
		Short: "Manage colis",
	}
	cmd.AddCommand(
		colisListCmd(),
		colisMineCmd(),
		colisGetCmd(),
		colisCreateCmd(),
		colisStatusCmd(),
		colisAssignCmd(),
	)
	return cmd
}

func colisListCmd() *cobra.Command {
	var opts client.ListColisOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all colis (staff only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireRoles("colis list", auth.RoleAdmin, auth.RoleManager); err != nil {
				return err
			}

			items, page, err := a.api.ListColis(cmd.Context(), opts)
			if err != nil {
				return err
			}
			printColisTable(items)
			if page.TotalPages > 1 {
				fmt.Printf("page %d/%d, %d total\n", page.Number+1, page.TotalPages, page.TotalElements)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&opts.Size, "size", 0, "Page size")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&opts.Search, "search", "", "Search reference or description")
	return cmd
}

func colisMineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List your own colis",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireRoles("colis mine"); err != nil {
				return err
			}

			items, _, err := a.api.MyColis(cmd.Context(), client.ListColisOptions{})
			if err != nil {
				return err
			}
			printColisTable(items)
			return nil
		},
	}
}

func colisGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one colis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireRoles("colis get"); err != nil {
				return err
			}

			colis, err := a.api.GetColis(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Reference:   %s\n", colis.Reference)
			fmt.Printf("Status:      %s\n", colis.Status)
			fmt.Printf("Priority:    %s\n", colis.Priority)
			fmt.Printf("Destination: %s\n", colis.Destination)
			fmt.Printf("Recipient:   %s %s (%s)\n",
				colis.Destinataire.Prenom, colis.Destinataire.Nom, colis.Destinataire.Telephone)
			fmt.Printf("Estimated:   %s\n", colis.EstimatedAt.Format(time.RFC3339))
			if len(colis.Historique) > 0 {
				fmt.Println("History:")
				for _, entry := range colis.Historique {
					fmt.Printf("  %s  %-12s %s\n",
						entry.Timestamp.Format(time.RFC3339), entry.Status, entry.Commentaire)
				}
			}
			return nil
		},
	}
}

func colisCreateCmd() *cobra.Command {
	var (
		input          client.CreateColisInput
		idempotencyKey string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a colis",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireRoles("colis create", auth.RoleAdmin, auth.RoleManager, auth.RoleClient); err != nil {
				return err
			}

			result, err := a.api.CreateColis(cmd.Context(), input, idempotencyKey)
			if err != nil {
				return err
			}
			fmt.Printf("Created %s (%s), estimated delivery %s\n",
				result.Reference, result.Status, result.EstimatedAt)
			return nil
		},
	}

	cmd.Flags().Float64Var(&input.Poids, "poids", 0, "Weight in kg")
	cmd.Flags().StringVar(&input.Description, "description", "", "Contents description")
	cmd.Flags().StringVar(&input.Destination, "destination", "", "Destination address")
	cmd.Flags().StringVar(&input.Priority, "priority", "NORMAL", "EXPRESS or NORMAL")
	cmd.Flags().StringVar(&input.CodePostal, "code-postal", "", "Destination postal code")
	cmd.Flags().StringVar(&input.Destinataire.Nom, "dest-nom", "", "Recipient last name")
	cmd.Flags().StringVar(&input.Destinataire.Prenom, "dest-prenom", "", "Recipient first name")
	cmd.Flags().StringVar(&input.Destinataire.Telephone, "dest-tel", "", "Recipient phone")
	cmd.Flags().StringVar(&input.Destinataire.Adresse, "dest-adresse", "", "Recipient address")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Replay-safe creation key")
	return cmd
}

func colisStatusCmd() *cobra.Command {
	var commentaire string

	cmd := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Transition a colis to a new status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireRoles("colis status", auth.RoleAdmin, auth.RoleManager, auth.RoleLivreur); err != nil {
				return err
			}

			if err := a.api.ChangeColisStatus(cmd.Context(), args[0], args[1], commentaire); err != nil {
				return err
			}
			fmt.Printf("Colis %s is now %s\n", args[0], args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&commentaire, "commentaire", "", "Note attached to the transition")
	return cmd
}

func colisAssignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign <colis-id> <livreur-id>",
		Short: "Assign a livreur to a colis (staff only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireRoles("colis assign", auth.RoleAdmin, auth.RoleManager); err != nil {
				return err
			}

			if err := a.api.AssignLivreur(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("Livreur assigned")
			return nil
		},
	}
}

func printColisTable(items []client.Colis) {
	if len(items) == 0 {
		fmt.Println("no colis")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "REFERENCE\tSTATUS\tPRIORITY\tDESTINATION\tLIVREUR")
	for _, colis := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			colis.Reference, colis.Status, colis.Priority, colis.Destination, colis.LivreurID)
	}
	w.Flush()
}
