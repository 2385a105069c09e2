package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mergington/activities/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "activities",
		Short: "Mergington High School activities API server",
		Long:  `Backend for viewing and signing up for extracurricular activities at Mergington High School.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewSeedCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
