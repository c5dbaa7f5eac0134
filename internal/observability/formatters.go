// Package observability provides formatted output utilities for the CLI:
// verbose-mode boxes for analysis results and the plain-text exports
// behind the copy/export feature.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/placement-readiness/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintEntry outputs a human-readable summary of a canonical entry:
// header, score, detected skills, round mapping, and company intel.
func (p *Printer) PrintEntry(entry *types.AnalysisEntry) {
	if entry == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", entry.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", entry.Role))
	sb.WriteString(fmt.Sprintf("Score:    %d (live %d)\n", entry.BaseScore, entry.FinalScore))
	sb.WriteString("\n")

	for _, cat := range entry.ExtractedSkills.Display() {
		if len(cat.Skills) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", cat.Name))
		count := min(len(cat.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", cat.Skills[i]))
		}
		if len(cat.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(cat.Skills)-maxItemsToShow))
		}
	}

	p.printBox(fmt.Sprintf("Analysis %s", entry.ID), strings.TrimRight(sb.String(), "\n"))

	if len(entry.RoundMapping) > 0 {
		var rb strings.Builder
		for i, round := range entry.RoundMapping {
			rb.WriteString(fmt.Sprintf("Round %d: %s\n", i+1, round.RoundTitle))
			if round.WhyItMatters != "" {
				rb.WriteString(fmt.Sprintf("  %s\n", round.WhyItMatters))
			}
		}
		p.printBox("Predicted rounds", strings.TrimRight(rb.String(), "\n"))
	}

	if entry.CompanyIntel != nil {
		intel := entry.CompanyIntel
		content := fmt.Sprintf("Industry: %s\nSize:     %s\nFocus:    %s",
			intel.Industry, intel.SizeCategory.Label, intel.TypicalHiringFocus)
		p.printBox(fmt.Sprintf("Company intel: %s", intel.CompanyName), content)
	}
}

// PrintHistory outputs a one-line-per-entry history listing plus the
// count of dropped records, if any.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintHistory(entries []*types.AnalysisEntry, skipped int) {
	if len(entries) == 0 {
		fmt.Fprintln(p.out, "No saved analyses.")
	}
	for _, entry := range entries {
		company := entry.Company
		if company == "" {
			company = "(no company)"
		}
		role := entry.Role
		if role == "" {
			role = "(no role)"
		}
		fmt.Fprintf(p.out, "%s  %-19s  %-20s  %-24s  score %d\n",
			entry.ID, entry.CreatedAt, truncate(company, 20), truncate(role, 24), entry.FinalScore)
	}
	if skipped > 0 {
		fmt.Fprintf(p.out, "(%d corrupted record(s) skipped)\n", skipped)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
