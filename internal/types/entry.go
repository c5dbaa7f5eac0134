// Package types provides type definitions for structured data used throughout the placement-readiness system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Size category values. The sizing heuristic is binary: a company either
// matches the known-enterprise list or it is treated as a startup.
const (
	SizeStartup    = "startup"
	SizeEnterprise = "enterprise"
)

// Skill confidence values set by the user per skill.
const (
	ConfidenceKnow     = "know"
	ConfidencePractice = "practice"
)

// SizeCategory describes an inferred company size bucket.
type SizeCategory struct {
	Label string `json:"label"` // e.g. "Enterprise (2000+)"
	Value string `json:"value"` // SizeStartup or SizeEnterprise
}

// CompanyIntel holds heuristic company information inferred from the
// company name and JD text. It is only produced for non-blank names.
type CompanyIntel struct {
	CompanyName        string       `json:"companyName"`
	Industry           string       `json:"industry"`
	SizeCategory       SizeCategory `json:"sizeCategory"`
	TypicalHiringFocus string       `json:"typicalHiringFocus"`
}

// Round is one predicted interview stage. FocusAreas is reserved for
// user-editable focus notes and is always empty at generation time.
type Round struct {
	RoundTitle   string   `json:"roundTitle"`
	FocusAreas   []string `json:"focusAreas"`
	WhyItMatters string   `json:"whyItMatters"`
}

// ChecklistRound is one round-wise preparation block (5-8 items).
type ChecklistRound struct {
	RoundTitle string   `json:"roundTitle"`
	Items      []string `json:"items"`
}

// PlanBlock is one block of the 7-day study plan. Days 1-2 and 3-4 are
// merged, so the plan always has five blocks covering seven days.
type PlanBlock struct {
	Day   string   `json:"day"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// AnalysisEntry is the canonical persisted analysis record. Every stored
// entry is migrated into this shape before use; no consumer past the
// schema layer ever sees legacy field names.
type AnalysisEntry struct {
	ID                 string            `json:"id"`
	CreatedAt          string            `json:"createdAt"` // RFC 3339
	Company            string            `json:"company"`
	Role               string            `json:"role"`
	JDText             string            `json:"jdText"`
	ExtractedSkills    ExtractedSkills   `json:"extractedSkills"`
	RoundMapping       []Round           `json:"roundMapping"`
	Checklist          []ChecklistRound  `json:"checklist"`
	Plan7Days          []PlanBlock       `json:"plan7Days"`
	Questions          []string          `json:"questions"`
	BaseScore          int               `json:"baseScore"`
	SkillConfidenceMap map[string]string `json:"skillConfidenceMap"`
	FinalScore         int               `json:"finalScore"`
	UpdatedAt          string            `json:"updatedAt"` // RFC 3339
	CompanyIntel       *CompanyIntel     `json:"companyIntel,omitempty"`
}
