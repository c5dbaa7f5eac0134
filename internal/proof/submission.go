package proof

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/placement-readiness/internal/store"
)

// stepIDs are the fixed proof step identifiers.
var stepIDs = []string{"1", "2", "3", "4", "5", "6", "7", "8"}

// Step is one build milestone that must be marked complete before shipping.
type Step struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Steps is the fixed 8-step proof sequence.
var Steps = []Step{
	{ID: "1", Label: "Landing & Get Started"},
	{ID: "2", Label: "Dashboard shell & navigation"},
	{ID: "3", Label: "Analyze (JD input, validation)"},
	{ID: "4", Label: "Results (skills, score, plan, questions)"},
	{ID: "5", Label: "History (save & load)"},
	{ID: "6", Label: "Company intel & round mapping"},
	{ID: "7", Label: "Test checklist (10 items passed)"},
	{ID: "8", Label: "Proof artifacts (3 links submitted)"},
}

// Submission holds the three artifact links required for shipping.
type Submission struct {
	LovableURL  string `json:"lovableUrl"`
	GithubURL   string `json:"githubUrl"`
	DeployedURL string `json:"deployedUrl"`
}

// Store persists proof state (checklist, steps, submission) in the same
// abstract KV as the history store.
type Store struct {
	kv       store.KV
	validate *validator.Validate
}

// NewStore creates a proof store over the given KV.
func NewStore(kv store.KV) *Store {
	return &Store{kv: kv, validate: validator.New()}
}

// ValidURL reports whether a link is a non-blank, syntactically valid
// http or https URL.
func (s *Store) ValidURL(url string) bool {
	trimmed := strings.TrimSpace(url)
	if trimmed == "" {
		return false
	}
	return s.validate.Var(trimmed, "http_url") == nil
}

// Submission returns the stored artifact links, defaulting corrupt or
// missing state to blanks.
func (s *Store) Submission() Submission {
	raw, ok := s.kv.Get(submissionKey)
	if !ok {
		return Submission{}
	}
	var sub Submission
	if err := json.Unmarshal(raw, &sub); err != nil {
		return Submission{}
	}
	return sub
}

// SetSubmission stores the artifact links, trimmed. Links are persisted
// even when invalid; validity is checked at gating time.
func (s *Store) SetSubmission(sub Submission) {
	trimmed := Submission{
		LovableURL:  strings.TrimSpace(sub.LovableURL),
		GithubURL:   strings.TrimSpace(sub.GithubURL),
		DeployedURL: strings.TrimSpace(sub.DeployedURL),
	}
	data, err := json.Marshal(trimmed)
	if err != nil {
		return
	}
	_ = s.kv.Set(submissionKey, data)
}

// StepCompletion returns the completion state of all eight steps.
func (s *Store) StepCompletion() map[string]bool {
	stored := readBoolMap(s.kv, stepsKey)
	out := make(map[string]bool, len(stepIDs))
	for _, id := range stepIDs {
		out[id] = stored[id]
	}
	return out
}

// SetStepCompletion records one step's completion. Unknown ids are ignored.
func (s *Store) SetStepCompletion(stepID string, completed bool) {
	known := false
	for _, id := range stepIDs {
		if id == stepID {
			known = true
			break
		}
	}
	if !known {
		return
	}
	stored := readBoolMap(s.kv, stepsKey)
	stored[stepID] = completed
	writeBoolMap(s.kv, stepsKey, stored)
}

// ValidProofLinks reports whether all three submission links are valid.
func (s *Store) ValidProofLinks() bool {
	sub := s.Submission()
	return s.ValidURL(sub.LovableURL) && s.ValidURL(sub.GithubURL) && s.ValidURL(sub.DeployedURL)
}

// Shipped reports shipped status: all 8 steps complete, all 10 checklist
// items checked, and all 3 proof links valid. Nothing bypasses the
// checklist gate.
func (s *Store) Shipped() bool {
	steps := s.StepCompletion()
	for _, id := range stepIDs {
		if !steps[id] {
			return false
		}
	}
	return s.ChecklistComplete() && s.ValidProofLinks()
}

// FinalSubmissionText renders the copyable final submission summary.
func (s *Store) FinalSubmissionText() string {
	sub := s.Submission()
	orNotSet := func(v string) string {
		if v == "" {
			return "(not set)"
		}
		return v
	}
	lines := []string{
		"------------------------------------------",
		"Placement Readiness Platform — Final Submission",
		"",
		"Lovable Project: " + orNotSet(sub.LovableURL),
		"GitHub Repository: " + orNotSet(sub.GithubURL),
		"Live Deployment: " + orNotSet(sub.DeployedURL),
		"",
		"Core Capabilities:",
		"- JD skill extraction (deterministic)",
		"- Round mapping engine",
		"- 7-day prep plan",
		"- Interactive readiness scoring",
		"- History persistence",
		"------------------------------------------",
	}
	return strings.Join(lines, "\n")
}
