package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-readiness/internal/observability"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a saved analysis (defaults to the most recent)",
	RunE:  runShow,
}

var (
	showID     string
	showStore  string
	showConfig string
)

func init() {
	showCmd.Flags().StringVar(&showID, "id", "", "Entry id (defaults to the latest saved entry)")
	showCmd.Flags().StringVar(&showStore, "store", "", "Path to the local store file")
	showCmd.Flags().StringVar(&showConfig, "config", "", "Path to JSON config file")

	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, _ []string) error {
	history, _, closeStores, err := openStores(showStore, showConfig)
	if err != nil {
		return err
	}
	defer closeStores()

	id := showID
	if id == "" {
		id = history.LatestID()
	}
	if id == "" {
		return fmt.Errorf("no saved analyses; run 'analyze' first")
	}

	entry := history.GetEntryByID(id)
	if entry == nil {
		return fmt.Errorf("entry not found: %s", id)
	}

	observability.NewPrinter(os.Stdout).PrintEntry(entry)
	return nil
}
