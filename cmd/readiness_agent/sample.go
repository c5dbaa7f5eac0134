package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-readiness/internal/analysis"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print a sample job description covering every skill category",
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Fprintln(os.Stdout, analysis.SampleJD)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}
