package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-readiness/internal/analysis"
	"github.com/jonathan/placement-readiness/internal/ingestion"
	"github.com/jonathan/placement-readiness/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description and save the result to history",
	Long:  "Analyze a job description file (plain text or HTML): extract skill tags, compute the readiness score, generate the round checklist, 7-day plan, and question list, and save the entry to local history.",
	RunE:  runAnalyze,
}

var (
	analyzeCompany string
	analyzeRole    string
	analyzeJDFile  string
	analyzeStore   string
	analyzeConfig  string
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeCompany, "company", "c", "", "Company name (optional, enables company intel)")
	analyzeCmd.Flags().StringVarP(&analyzeRole, "role", "r", "", "Role title (optional)")
	analyzeCmd.Flags().StringVarP(&analyzeJDFile, "jd", "j", "", "Path to job description file (.txt, .html) (required)")
	analyzeCmd.Flags().StringVar(&analyzeStore, "store", "", "Path to the local store file")
	analyzeCmd.Flags().StringVar(&analyzeConfig, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print the full analysis result")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if analyzeJDFile == "" {
		return fmt.Errorf("--jd is required")
	}

	jdText, meta, err := ingestion.JDFromFile(analyzeJDFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}
	if jdText == "" {
		return fmt.Errorf("job description is empty")
	}
	if meta.ShortJD {
		fmt.Fprintf(os.Stderr, "Warning: JD is short (%d chars); extraction may be unreliable.\n", meta.CharCount)
	}

	result := analysis.Run(analyzeCompany, analyzeRole, jdText)

	history, _, closeStores, err := openStores(analyzeStore, analyzeConfig)
	if err != nil {
		return err
	}
	defer closeStores()

	id := history.SaveEntry(result)
	if id == "" {
		return fmt.Errorf("failed to save analysis entry")
	}

	fmt.Fprintf(os.Stdout, "Saved analysis %s (score %d)\n", id, result.ReadinessScore)

	if analyzeVerbose {
		if entry := history.GetEntryByID(id); entry != nil {
			observability.NewPrinter(os.Stdout).PrintEntry(entry)
		}
	}

	return nil
}
