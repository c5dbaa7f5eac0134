package analysis

import (
	"fmt"
	"strings"

	"github.com/jonathan/placement-readiness/internal/skills"
	"github.com/jonathan/placement-readiness/internal/types"
)

// maxChecklistItems caps each round's list after conditional lines are
// appended. Conditionals append in fixed order, so truncation always drops
// the last-appended lines first.
const maxChecklistItems = 8

func truncateItems(items []string) []string {
	if len(items) > maxChecklistItems {
		return items[:maxChecklistItems]
	}
	return items
}

// BuildChecklist builds the round-wise preparation checklist: four fixed
// base lists with extra lines appended when matching skill categories are
// present, each capped at 8 items.
func BuildChecklist(ex *skills.Extraction) []types.ChecklistRound {
	round1 := []string{
		"Revise quantitative aptitude: ratios, percentages, time-speed-distance.",
		"Practice logical reasoning and pattern-based questions.",
		"Review basic CS fundamentals: computer architecture, number systems.",
		"Take at least one timed aptitude mock test.",
		"Brush up verbal ability if the role requires communication.",
	}
	if ex.Has(types.CategoryCoreCS) {
		round1 = append(round1,
			"Revise OS basics: processes, threads, scheduling.",
			"Revise DBMS basics: normalization, ACID.")
	}
	if ex.Has(types.CategoryLanguages) {
		round1 = append(round1,
			fmt.Sprintf("Review %s syntax and common APIs.", ex.Tags(types.CategoryLanguages)[0]))
	}

	round2 := []string{
		"Practice array and string problems (2–3 daily).",
		"Revise key data structures: arrays, linked lists, trees, graphs.",
		"Practice hash map and two-pointer patterns.",
	}
	if ex.Has(types.CategoryCoreCS) {
		round2 = append(round2,
			"Revise OOP concepts: encapsulation, inheritance, polymorphism.",
			"Prepare short notes on OS: deadlock, memory management.",
			"Revise networking: TCP/IP, HTTP, status codes.")
	}
	round2 = append(round2, "Do at least 2 medium LeetCode (or equivalent) problems.")
	if ex.Has(types.CategoryCoreCS) {
		round2 = append(round2, "Revise time/space complexity for common algorithms.")
	}

	round3 := []string{
		"List 2–3 projects with tech stack and your role.",
		"Prepare 2–3 min project summary (problem, solution, impact).",
	}
	if ex.Has(types.CategoryWeb) {
		round3 = append(round3,
			fmt.Sprintf("Prepare to explain %s choices in your projects.",
				strings.Join(ex.Tags(types.CategoryWeb), " / ")),
			"Revise REST/API design and status codes.")
	}
	if ex.Has(types.CategoryData) {
		round3 = append(round3,
			fmt.Sprintf("Prepare to explain DB design and %s usage.",
				strings.Join(ex.Tags(types.CategoryData), ", ")))
	}
	if ex.Has(types.CategoryLanguages) {
		round3 = append(round3,
			fmt.Sprintf("Be ready to write small %s snippets on a shared editor.",
				ex.Tags(types.CategoryLanguages)[0]))
	}
	if ex.Has(types.CategoryCloud) {
		cloud := ex.Tags(types.CategoryCloud)
		if len(cloud) > 2 {
			cloud = cloud[:2]
		}
		round3 = append(round3,
			fmt.Sprintf("Prepare to discuss deployment (%s) if relevant.", strings.Join(cloud, ", ")))
	}
	round3 = append(round3, "Prepare questions to ask the interviewer about the role.")

	round4 := []string{
		"Prepare self-introduction (1–2 min).",
		"Prepare STAR examples for teamwork, conflict, deadline.",
		"Know why you want this company and this role.",
		"Prepare “strengths and weaknesses” with honest, brief answers.",
		"Prepare 2–3 questions about team, growth, and culture.",
	}
	if !ex.IsGeneralFresher {
		round4 = append(round4, "Align your story with the JD skills and company values.")
	}

	return []types.ChecklistRound{
		{RoundTitle: "Round 1: Aptitude / Basics", Items: truncateItems(round1)},
		{RoundTitle: "Round 2: DSA + Core CS", Items: truncateItems(round2)},
		{RoundTitle: "Round 3: Tech interview (projects + stack)", Items: truncateItems(round3)},
		{RoundTitle: "Round 4: Managerial / HR", Items: truncateItems(round4)},
	}
}
