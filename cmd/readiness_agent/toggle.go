package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-readiness/internal/analysis"
	"github.com/jonathan/placement-readiness/internal/types"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Set per-skill confidence and recompute the live score",
	Long:  "Mark a skill from a saved analysis as 'know' or 'practice'. The live score is recomputed (+2 per known skill, -2 per skill needing practice) and persisted immediately.",
	RunE:  runToggle,
}

var (
	toggleID         string
	toggleSkill      string
	toggleConfidence string
	toggleStore      string
	toggleConfig     string
)

func init() {
	toggleCmd.Flags().StringVar(&toggleID, "id", "", "Entry id (defaults to the latest saved entry)")
	toggleCmd.Flags().StringVar(&toggleSkill, "skill", "", "Skill name as shown by 'show' (required)")
	toggleCmd.Flags().StringVar(&toggleConfidence, "confidence", "", "Confidence: know or practice (required)")
	toggleCmd.Flags().StringVar(&toggleStore, "store", "", "Path to the local store file")
	toggleCmd.Flags().StringVar(&toggleConfig, "config", "", "Path to JSON config file")

	rootCmd.AddCommand(toggleCmd)
}

func runToggle(_ *cobra.Command, _ []string) error {
	if toggleSkill == "" {
		return fmt.Errorf("--skill is required")
	}
	if toggleConfidence != types.ConfidenceKnow && toggleConfidence != types.ConfidencePractice {
		return fmt.Errorf("--confidence must be %q or %q", types.ConfidenceKnow, types.ConfidencePractice)
	}

	history, _, closeStores, err := openStores(toggleStore, toggleConfig)
	if err != nil {
		return err
	}
	defer closeStores()

	id := toggleID
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

	allSkills := entry.ExtractedSkills.AllSkills()
	known := false
	for _, skill := range allSkills {
		if skill == toggleSkill {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("skill %q is not part of entry %s", toggleSkill, id)
	}

	confidence := entry.SkillConfidenceMap
	if confidence == nil {
		confidence = map[string]string{}
	}
	confidence[toggleSkill] = toggleConfidence

	finalScore := analysis.ComputeLiveScore(entry.BaseScore, confidence, allSkills)
	history.UpdateEntry(id, map[string]any{
		"skillConfidenceMap": confidence,
		"finalScore":         finalScore,
		"updatedAt":          time.Now().UTC().Format(time.RFC3339),
	})

	fmt.Fprintf(os.Stdout, "%s → %s; live score %d (base %d)\n", toggleSkill, toggleConfidence, finalScore, entry.BaseScore)
	return nil
}
