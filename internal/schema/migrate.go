package schema

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/jonathan/placement-readiness/internal/types"
)

// MigrateEntry coerces a raw stored record into the canonical entry shape.
//
// Records that already validate are decoded as-is (identity fast path).
// Anything else is rebuilt field by field: legacy field names are resolved,
// missing or wrong-typed fields default to empty/zero, and fractional
// scores are rounded. Returns nil when the record cannot be coerced at all;
// callers treat nil as "drop this entry". Migration is idempotent and never
// panics across this boundary.
func MigrateEntry(raw json.RawMessage) (entry *types.AnalysisEntry) {
	defer func() {
		if recover() != nil {
			entry = nil
		}
	}()

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return nil
	}

	if ValidateEntry(raw) {
		var e types.AnalysisEntry
		if err := json.Unmarshal(raw, &e); err == nil {
			return &e
		}
		// Structurally valid but not strictly decodable (fractional score,
		// non-string array element); rebuild below.
	}

	rounds, ok := normalizeRoundsValue(m["roundMapping"])
	if !ok {
		return nil
	}
	checklist, ok := normalizeChecklistValue(m["checklist"])
	if !ok {
		return nil
	}
	planSrc, present := m["plan7Days"]
	if !present || planSrc == nil {
		planSrc = m["plan"]
	}
	plan, ok := normalizePlanValue(planSrc)
	if !ok {
		return nil
	}

	baseScore, isNum := intValue(m["baseScore"])
	if !isNum {
		baseScore, _ = intValue(m["readinessScore"])
	}
	finalScore, isNum := intValue(m["finalScore"])
	if !isNum {
		finalScore = baseScore
	}

	updatedAt, isStr := stringValue(m["updatedAt"])
	if !isStr {
		updatedAt = nowRFC3339()
	}

	return &types.AnalysisEntry{
		ID:                 stringOr(m["id"]),
		CreatedAt:          stringOr(m["createdAt"]),
		Company:            stringOr(m["company"]),
		Role:               stringOr(m["role"]),
		JDText:             stringOr(m["jdText"]),
		ExtractedSkills:    normalizeSkillsValue(m["extractedSkills"]),
		RoundMapping:       rounds,
		Checklist:          checklist,
		Plan7Days:          plan,
		Questions:          stringSlice(m["questions"]),
		BaseScore:          baseScore,
		SkillConfidenceMap: confidenceMap(m["skillConfidenceMap"]),
		FinalScore:         finalScore,
		UpdatedAt:          updatedAt,
		CompanyIntel:       normalizeIntelValue(m["companyIntel"]),
	}
}

// normalizeSkillsValue accepts canonical, legacy by-category, or garbage
// extractedSkills values and always yields the canonical 7-key form.
func normalizeSkillsValue(v any) types.ExtractedSkills {
	m, ok := v.(map[string]any)
	if !ok {
		return emptySkills()
	}

	if _, canonical := m["coreCS"]; canonical {
		other := stringSlice(m["other"])
		if len(other) == 0 {
			other = defaultOtherSkills()
		}
		return types.ExtractedSkills{
			CoreCS:    stringSlice(m["coreCS"]),
			Languages: stringSlice(m["languages"]),
			Web:       stringSlice(m["web"]),
			Data:      stringSlice(m["data"]),
			Cloud:     stringSlice(m["cloud"]),
			Testing:   stringSlice(m["testing"]),
			Other:     other,
		}
	}

	byCategory, _ := m["byCategory"].(map[string]any)
	isGeneralFresher := m["isGeneralFresher"] == true

	var other []string
	if isGeneralFresher {
		other = defaultOtherSkills()
	} else {
		other = stringSlice(byCategory[types.CategoryGeneral])
	}
	if len(other) == 0 {
		other = defaultOtherSkills()
	}

	return types.ExtractedSkills{
		CoreCS:    stringSlice(byCategory[types.CategoryCoreCS]),
		Languages: stringSlice(byCategory[types.CategoryLanguages]),
		Web:       stringSlice(byCategory[types.CategoryWeb]),
		Data:      stringSlice(byCategory[types.CategoryData]),
		Cloud:     stringSlice(byCategory[types.CategoryCloud]),
		Testing:   stringSlice(byCategory[types.CategoryTesting]),
		Other:     other,
	}
}

// normalizeRoundsValue coerces a round mapping value, accepting the legacy
// round/title/whyMatters field names. A nil element aborts the rebuild
// (ok=false), mirroring the drop-on-corruption contract.
func normalizeRoundsValue(v any) ([]types.Round, bool) {
	arr, ok := v.([]any)
	if !ok {
		return []types.Round{}, true
	}
	out := make([]types.Round, 0, len(arr))
	for _, el := range arr {
		if el == nil {
			return nil, false
		}
		m, ok := el.(map[string]any)
		if !ok {
			// A primitive element carries no fields; the legacy join of two
			// missing names leaves the bare separator.
			out = append(out, types.Round{RoundTitle: ":", FocusAreas: []string{}})
			continue
		}
		title, isStr := stringValue(m["roundTitle"])
		if !isStr {
			title = strings.TrimSpace(stringOr(m["round"]) + ": " + stringOr(m["title"]))
		}
		why, isStr := stringValue(m["whyItMatters"])
		if !isStr {
			why = stringOr(m["whyMatters"])
		}
		out = append(out, types.Round{
			RoundTitle:   title,
			FocusAreas:   stringSlice(m["focusAreas"]),
			WhyItMatters: why,
		})
	}
	return out, true
}

// normalizeChecklistValue coerces a checklist value, accepting the legacy
// round field name for roundTitle.
func normalizeChecklistValue(v any) ([]types.ChecklistRound, bool) {
	arr, ok := v.([]any)
	if !ok {
		return []types.ChecklistRound{}, true
	}
	out := make([]types.ChecklistRound, 0, len(arr))
	for _, el := range arr {
		if el == nil {
			return nil, false
		}
		m, ok := el.(map[string]any)
		if !ok {
			out = append(out, types.ChecklistRound{Items: []string{}})
			continue
		}
		title, isStr := stringValue(m["roundTitle"])
		if !isStr {
			title = stringOr(m["round"])
		}
		out = append(out, types.ChecklistRound{
			RoundTitle: title,
			Items:      stringSlice(m["items"]),
		})
	}
	return out, true
}

// normalizePlanValue coerces a plan value; focus falls back to the day
// label for legacy blocks that never carried a focus field.
func normalizePlanValue(v any) ([]types.PlanBlock, bool) {
	arr, ok := v.([]any)
	if !ok {
		return []types.PlanBlock{}, true
	}
	out := make([]types.PlanBlock, 0, len(arr))
	for _, el := range arr {
		if el == nil {
			return nil, false
		}
		m, ok := el.(map[string]any)
		if !ok {
			out = append(out, types.PlanBlock{Tasks: []string{}})
			continue
		}
		day := stringOr(m["day"])
		focus, isStr := stringValue(m["focus"])
		if !isStr {
			focus = day
		}
		out = append(out, types.PlanBlock{
			Day:   day,
			Focus: focus,
			Tasks: stringSlice(m["tasks"]),
		})
	}
	return out, true
}

// normalizeIntelValue coerces an optional companyIntel value; anything that
// is not an object becomes nil (the field is optional in canonical form).
func normalizeIntelValue(v any) *types.CompanyIntel {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	intel := &types.CompanyIntel{
		CompanyName:        stringOr(m["companyName"]),
		Industry:           stringOr(m["industry"]),
		TypicalHiringFocus: stringOr(m["typicalHiringFocus"]),
	}
	if size, ok := m["sizeCategory"].(map[string]any); ok {
		intel.SizeCategory = types.SizeCategory{
			Label: stringOr(size["label"]),
			Value: stringOr(size["value"]),
		}
	}
	return intel
}

// confidenceMap keeps only string-valued confidence flags; live scoring
// treats any value other than "know" as needing practice, so dropping
// malformed values does not change behavior.
func confidenceMap(v any) map[string]string {
	out := map[string]string{}
	m, ok := v.(map[string]any)
	if !ok {
		return out
	}
	for skill, val := range m {
		if s, ok := val.(string); ok {
			out[skill] = s
		}
	}
	return out
}

func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func stringOr(v any) string {
	s, _ := v.(string)
	return s
}

// intValue coerces a JSON number to int, rounding fractional values.
func intValue(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(math.Round(f)), true
}

// stringSlice keeps the string elements of a JSON array; a non-array value
// yields an empty slice.
func stringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, el := range arr {
		if s, ok := el.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
