package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-readiness/internal/observability"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a saved analysis section as plain text",
	Long:  "Export the 7-day plan, the round checklist, or the question list of a saved analysis as copyable plain text on stdout.",
	RunE:  runExport,
}

var (
	exportID     string
	exportWhat   string
	exportStore  string
	exportConfig string
)

func init() {
	exportCmd.Flags().StringVar(&exportID, "id", "", "Entry id (defaults to the latest saved entry)")
	exportCmd.Flags().StringVar(&exportWhat, "what", "", "Section to export: plan, checklist, or questions (required)")
	exportCmd.Flags().StringVar(&exportStore, "store", "", "Path to the local store file")
	exportCmd.Flags().StringVar(&exportConfig, "config", "", "Path to JSON config file")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	if exportWhat != "plan" && exportWhat != "checklist" && exportWhat != "questions" {
		return fmt.Errorf("--what must be plan, checklist, or questions")
	}

	history, _, closeStores, err := openStores(exportStore, exportConfig)
	if err != nil {
		return err
	}
	defer closeStores()

	id := exportID
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

	var text string
	switch exportWhat {
	case "plan":
		text = observability.FormatPlanText(entry.Plan7Days)
	case "checklist":
		text = observability.FormatChecklistText(entry.Checklist)
	case "questions":
		text = observability.FormatQuestionsText(entry.Questions)
	}

	fmt.Fprintln(os.Stdout, text)
	return nil
}
