package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Terminal dashboard for the colis delivery platform",
		Long: `dashboard is the terminal companion to the delivery platform.

Log in once, then manage colis, livreurs, clients, and access control
from the command line. The session is persisted under your user config
directory and reused until it expires or you log out.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		loginCmd(),
		logoutCmd(),
		whoamiCmd(),
		colisCmd(),
		livreursCmd(),
		clientsCmd(),
		accessCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dashboard %s (%s)\n", version, commit)
		},
	}
}
