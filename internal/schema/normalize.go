package schema

import (
	"time"

	"github.com/jonathan/placement-readiness/internal/analysis"
	"github.com/jonathan/placement-readiness/internal/skills"
	"github.com/jonathan/placement-readiness/internal/types"
)

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func sliceOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func defaultOtherSkills() []string {
	out := make([]string, len(types.DefaultOtherSkills))
	copy(out, types.DefaultOtherSkills)
	return out
}

// emptySkills returns canonical skills with every category empty except
// other, which carries the fresher default.
func emptySkills() types.ExtractedSkills {
	return types.ExtractedSkills{
		CoreCS:    []string{},
		Languages: []string{},
		Web:       []string{},
		Data:      []string{},
		Cloud:     []string{},
		Testing:   []string{},
		Other:     defaultOtherSkills(),
	}
}

// NormalizeExtraction converts raw extractor output to the canonical 7-key
// form. The other category falls back to the fresher default whenever it
// would otherwise be empty.
func NormalizeExtraction(ex *skills.Extraction) types.ExtractedSkills {
	if ex == nil {
		return emptySkills()
	}

	var other []string
	if ex.IsGeneralFresher {
		other = defaultOtherSkills()
	} else {
		other = sliceOrEmpty(ex.ByCategory[types.CategoryGeneral])
	}
	if len(other) == 0 {
		other = defaultOtherSkills()
	}

	return types.ExtractedSkills{
		CoreCS:    sliceOrEmpty(ex.ByCategory[types.CategoryCoreCS]),
		Languages: sliceOrEmpty(ex.ByCategory[types.CategoryLanguages]),
		Web:       sliceOrEmpty(ex.ByCategory[types.CategoryWeb]),
		Data:      sliceOrEmpty(ex.ByCategory[types.CategoryData]),
		Cloud:     sliceOrEmpty(ex.ByCategory[types.CategoryCloud]),
		Testing:   sliceOrEmpty(ex.ByCategory[types.CategoryTesting]),
		Other:     other,
	}
}

// NormalizeAnalysisToEntry builds the canonical part of an entry from a
// fresh analysis result. ID and createdAt are assigned later by the history
// store on save. Returns nil for a nil result.
func NormalizeAnalysisToEntry(result *analysis.Result) *types.AnalysisEntry {
	if result == nil {
		return nil
	}

	roundMapping := result.RoundMapping
	if roundMapping == nil {
		roundMapping = []types.Round{}
	}
	checklist := result.Checklist
	if checklist == nil {
		checklist = []types.ChecklistRound{}
	}
	plan := result.Plan7Days
	if plan == nil {
		plan = []types.PlanBlock{}
	}

	baseScore := result.ReadinessScore

	return &types.AnalysisEntry{
		Company:            result.Company,
		Role:               result.Role,
		JDText:             result.JDText,
		ExtractedSkills:    NormalizeExtraction(result.ExtractedSkills),
		RoundMapping:       roundMapping,
		Checklist:          checklist,
		Plan7Days:          plan,
		Questions:          sliceOrEmpty(result.Questions),
		BaseScore:          baseScore,
		SkillConfidenceMap: map[string]string{},
		FinalScore:         baseScore,
		UpdatedAt:          nowRFC3339(),
		CompanyIntel:       result.CompanyIntel,
	}
}
