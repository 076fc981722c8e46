package main

import (
	"os"

	"github.com/spf13/cobra"

	"careline/internal/interfaces/cli/migrate"
	"careline/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "careline",
		Short: "Careline - support ticket service",
		Long:  `Careline is the support ticketing backend with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
