package analysis

import (
	"strings"

	"github.com/jonathan/placement-readiness/internal/intel"
	"github.com/jonathan/placement-readiness/internal/skills"
	"github.com/jonathan/placement-readiness/internal/types"
)

// Result is the unsaved output of a full analysis run. The history store
// normalizes it into a canonical entry and assigns id/createdAt on save.
type Result struct {
	Company         string                 `json:"company"`
	Role            string                 `json:"role"`
	JDText          string                 `json:"jdText"`
	ExtractedSkills *skills.Extraction     `json:"extractedSkills"`
	Checklist       []types.ChecklistRound `json:"checklist"`
	Plan7Days       []types.PlanBlock      `json:"plan7Days"`
	Questions       []string               `json:"questions"`
	ReadinessScore  int                    `json:"readinessScore"`
	CompanyIntel    *types.CompanyIntel    `json:"companyIntel,omitempty"`
	RoundMapping    []types.Round          `json:"roundMapping"`
}

// Run executes the full analysis pipeline: skill extraction, scoring,
// checklist, plan, questions, company intel, and round mapping. It has no
// side effects and never touches storage; the same inputs always produce
// the same result.
func Run(company, role, jdText string) *Result {
	extraction := skills.ExtractSkills(jdText)
	score := ComputeReadinessScore(company, role, jdText, extraction.CategoryNames)
	checklist := BuildChecklist(extraction)
	plan := BuildPlan7Days(extraction)
	questions := BuildQuestions(extraction)

	companyName := strings.TrimSpace(company)
	companyIntel := intel.CompanyIntel(companyName, jdText)
	roundMapping := intel.RoundMapping(companyIntel, extraction)

	return &Result{
		Company:         companyName,
		Role:            strings.TrimSpace(role),
		JDText:          strings.TrimSpace(jdText),
		ExtractedSkills: extraction,
		Checklist:       checklist,
		Plan7Days:       plan,
		Questions:       questions,
		ReadinessScore:  score,
		CompanyIntel:    companyIntel,
		RoundMapping:    roundMapping,
	}
}
