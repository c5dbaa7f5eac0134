// Package main provides the entry point for the placement readiness CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "readiness_agent",
	Short: "Placement readiness analysis CLI",
	Long:  "Placement readiness analysis: extracts skill tags from a job description, computes a readiness score, and generates a round-wise checklist, 7-day study plan, and likely interview questions, persisted as local history.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
