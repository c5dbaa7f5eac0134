package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-readiness/internal/observability"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved analyses, newest first",
	RunE:  runHistory,
}

var (
	historyStore  string
	historyConfig string
)

func init() {
	historyCmd.Flags().StringVar(&historyStore, "store", "", "Path to the local store file")
	historyCmd.Flags().StringVar(&historyConfig, "config", "", "Path to JSON config file")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	history, _, closeStores, err := openStores(historyStore, historyConfig)
	if err != nil {
		return err
	}
	defer closeStores()

	entries, skipped := history.GetHistory()
	observability.NewPrinter(os.Stdout).PrintHistory(entries, skipped)
	return nil
}
