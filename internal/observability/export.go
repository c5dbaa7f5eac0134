package observability

import (
	"fmt"
	"strings"

	"github.com/jonathan/placement-readiness/internal/types"
)

// FormatPlanText renders the 7-day plan as copyable plain text.
func FormatPlanText(plan []types.PlanBlock) string {
	if len(plan) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, block := range plan {
		if i > 0 {
			sb.WriteString("\n")
		}
		label := block.Day
		if block.Focus != "" && block.Focus != block.Day {
			label = block.Day + ": " + block.Focus
		}
		sb.WriteString(label + "\n")
		for _, task := range block.Tasks {
			sb.WriteString("- " + task + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatChecklistText renders the round-wise checklist as plain text.
func FormatChecklistText(checklist []types.ChecklistRound) string {
	if len(checklist) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, round := range checklist {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(round.RoundTitle + "\n")
		for _, item := range round.Items {
			sb.WriteString("- " + item + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatQuestionsText renders the question list as numbered plain text.
func FormatQuestionsText(questions []string) string {
	if len(questions) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, q := range questions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, q))
	}
	return strings.TrimRight(sb.String(), "\n")
}
