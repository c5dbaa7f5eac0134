package analysis

import (
	"fmt"
	"strings"

	"github.com/jonathan/placement-readiness/internal/skills"
	"github.com/jonathan/placement-readiness/internal/types"
)

// BuildPlan7Days builds the 7-day study plan: five blocks covering days 1-7
// (days 1-2 and 3-4 merged), with extra tasks inserted for detected skill
// categories. No truncation is applied.
func BuildPlan7Days(ex *skills.Extraction) []types.PlanBlock {
	day1 := []string{
		"Revise core CS: OS (processes, threads), DBMS (normalization, SQL basics).",
		"Brush up aptitude: percentages, ratios, simple reasoning.",
	}
	if ex.Has(types.CategoryCoreCS) {
		day1 = append(day1, "Revise Networks: TCP/IP, HTTP basics.")
	}

	day2 := []string{
		"Continue core CS: data structures (array, linked list, stack, queue).",
		"Practice 2–3 basic coding problems (arrays/strings).",
	}
	if ex.Has(types.CategoryLanguages) {
		day2 = append(day2,
			fmt.Sprintf("Quick %s syntax and stdlib recap.", ex.Tags(types.CategoryLanguages)[0]))
	}

	day3 := []string{
		"DSA focus: trees and graphs (traversals, BFS/DFS).",
		"Solve 2 medium-level problems (tree/graph).",
	}

	day4 := []string{
		"DSA: dynamic programming and greedy (classic problems).",
		"Coding practice: 2 problems under time limit.",
	}

	day5 := []string{
		"Document 2 projects: tech stack, your role, outcomes.",
		"Align resume bullets with JD keywords.",
	}
	if ex.Has(types.CategoryWeb) {
		day5 = append(day5,
			fmt.Sprintf("Frontend revision: %s — key concepts.",
				strings.Join(ex.Tags(types.CategoryWeb), ", ")))
	}
	if ex.Has(types.CategoryData) {
		day5 = append(day5,
			fmt.Sprintf("DB design and %s usage in projects.",
				strings.Join(ex.Tags(types.CategoryData), ", ")))
	}

	day6 := []string{
		"Practice mock interview: introduce yourself, explain one project.",
		"Prepare 5–10 likely tech questions from your stack.",
	}
	if ex.Has(types.CategoryCoreCS) {
		day6 = append(day6, "Prepare OS/DBMS/Networks short answers.")
	}

	day7 := []string{
		"Revision: weak areas from the week.",
		"Light practice: 1–2 easy problems to stay sharp.",
		"Rest and prepare mentally for the interview.",
	}

	return []types.PlanBlock{
		{Day: "Day 1–2", Focus: "Basics + core CS", Tasks: append(day1, day2...)},
		{Day: "Day 3–4", Focus: "DSA + coding practice", Tasks: append(day3, day4...)},
		{Day: "Day 5", Focus: "Project + resume alignment", Tasks: day5},
		{Day: "Day 6", Focus: "Mock interview questions", Tasks: day6},
		{Day: "Day 7", Focus: "Revision + weak areas", Tasks: day7},
	}
}
