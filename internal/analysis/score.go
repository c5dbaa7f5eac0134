// Package analysis turns extracted skills into a readiness score, a
// round-wise checklist, a 7-day study plan, and likely interview questions.
//
// Every generator is a pure function of its inputs: identical inputs
// produce byte-identical output. That determinism is part of the public
// contract (the UI advertises reproducible scores), so nothing here may
// consult time, randomness, or storage.
package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/placement-readiness/internal/types"
)

const (
	scoreStart       = 35
	categoryBonus    = 5
	maxCategoryBonus = 30
	companyBonus     = 10
	roleBonus        = 10
	longJDBonus      = 10
	longJDThreshold  = 800

	scoreMin = 0
	scoreMax = 100

	// Live-score adjustment per skill confidence toggle.
	knowDelta     = 2
	practiceDelta = 2
)

func clampScore(score int) int {
	if score > scoreMax {
		return scoreMax
	}
	if score < scoreMin {
		return scoreMin
	}
	return score
}

// ComputeReadinessScore computes the 0-100 base readiness score.
// Start 35, +5 per detected category excluding General (max 30),
// +10 company, +10 role, +10 when the trimmed JD exceeds 800 characters.
func ComputeReadinessScore(company, role, jdText string, categoryNames []string) int {
	score := scoreStart

	detected := 0
	for _, name := range categoryNames {
		if name != types.CategoryGeneral {
			detected++
		}
	}
	bonus := detected * categoryBonus
	if bonus > maxCategoryBonus {
		bonus = maxCategoryBonus
	}
	score += bonus

	if strings.TrimSpace(company) != "" {
		score += companyBonus
	}
	if strings.TrimSpace(role) != "" {
		score += roleBonus
	}
	if utf8.RuneCountInString(strings.TrimSpace(jdText)) > longJDThreshold {
		score += longJDBonus
	}

	return clampScore(score)
}

// ComputeLiveScore adjusts the base score by per-skill confidence toggles:
// +2 per skill marked "know", -2 per skill needing practice. Skills with no
// recorded confidence count as needing practice. Result stays in [0,100].
func ComputeLiveScore(baseScore int, confidence map[string]string, allSkills []string) int {
	knowCount := 0
	practiceCount := 0
	for _, skill := range allSkills {
		if confidence[skill] == types.ConfidenceKnow {
			knowCount++
		} else {
			practiceCount++
		}
	}
	return clampScore(baseScore + knowDelta*knowCount - practiceDelta*practiceCount)
}
