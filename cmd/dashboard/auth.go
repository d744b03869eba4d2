package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/colisexpress/delivery-system/pkg/client/guard"
)

func loginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if email == "" {
				fmt.Print("Email: ")
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return err
				}
				email = strings.TrimSpace(line)
			}

			fmt.Print("Password: ")
			password, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return err
			}

			user, err := a.auth.Login(cmd.Context(), email, string(password))
			if err != nil {
				return err
			}

			fmt.Printf("Logged in as %s (%s)\n", user.Email, user.Role)
			fmt.Printf("Home view: %s\n", guard.DefaultRedirectFor(user))
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			a.auth.Logout()
			fmt.Println("Logged out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			user, ok := a.auth.CurrentUser()
			if !ok {
				return errLoginRequired
			}
			fmt.Printf("ID:    %s\n", user.ID)
			fmt.Printf("Email: %s\n", user.Email)
			fmt.Printf("Role:  %s\n", user.Role)
			if user.Nom != "" || user.Prenom != "" {
				fmt.Printf("Name:  %s %s\n", user.Prenom, user.Nom)
			}
			return nil
		},
	}
}
