// Package proof implements the proof-of-work data contract: a fixed
// 10-item manual test checklist, an 8-step completion map, and a 3-link
// submission record. "Shipped" status is gated on all three being complete.
package proof

import (
	"encoding/json"

	"github.com/jonathan/placement-readiness/internal/store"
)

// Persisted keys shared with the core history store's KV.
const (
	checklistKey  = "placement_prep_test_checklist"
	stepsKey      = "prp_proof_steps"
	submissionKey = "prp_final_submission"
)

// TestItem is one manual verification item.
type TestItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Hint  string `json:"hint"`
}

// TestItems is the fixed checklist. All ten must be checked before the
// tool reports shipped status.
var TestItems = []TestItem{
	{ID: "jd-required", Label: "JD required validation works", Hint: "Submit with empty JD; button should be disabled."},
	{ID: "short-jd-warning", Label: "Short JD warning shows for <200 chars", Hint: "Paste fewer than 200 characters in JD; a calm warning should appear below the field."},
	{ID: "skills-extraction", Label: "Skills extraction groups correctly", Hint: "Run analysis with the sample JD; Results should show skills grouped by category (Core CS, Languages, Web, etc.)."},
	{ID: "round-mapping", Label: "Round mapping changes based on company + skills", Hint: "Analyze with Infosys + DSA vs unknown company + React; round titles and count should differ."},
	{ID: "score-deterministic", Label: "Score calculation is deterministic", Hint: "Same JD, company, and role give the same base score every time."},
	{ID: "toggles-live", Label: "Skill toggles update score live", Hint: "On Results, toggle I know / Need practice; the score and circle should update immediately."},
	{ID: "persist-refresh", Label: "Changes persist after refresh", Hint: "Toggle some skills on Results, then refresh the page; same toggles and score should appear."},
	{ID: "history-saves", Label: "History saves and loads correctly", Hint: "Run an analysis, open History; the entry should appear. Click it to open Results."},
	{ID: "export-copy", Label: "Export buttons copy the correct content", Hint: "Click Copy 7-day plan, Copy round checklist, or Copy 10 questions; paste in a text editor to verify content."},
	{ID: "no-console-errors", Label: "No console errors on core pages", Hint: "Open /, /dashboard, /dashboard/analyze, /dashboard/results, /dashboard/history; Console should show no errors."},
}

func testIDs() []string {
	ids := make([]string, len(TestItems))
	for i, item := range TestItems {
		ids[i] = item.ID
	}
	return ids
}

func isTestID(id string) bool {
	for _, item := range TestItems {
		if item.ID == id {
			return true
		}
	}
	return false
}

// readBoolMap reads a persisted boolean map. Values are coerced per key
// (only literal true counts), so one malformed value cannot discard the
// rest of the stored state; an unreadable map is treated as empty.
func readBoolMap(kv store.KV, key string) map[string]bool {
	raw, ok := kv.Get(key)
	if !ok {
		return map[string]bool{}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]bool{}
	}
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v == true
	}
	return out
}

func writeBoolMap(kv store.KV, key string, m map[string]bool) {
	data, err := json.Marshal(m)
	if err != nil {
		return
	}
	_ = kv.Set(key, data)
}

// Checklist returns the checked state of every test item, defaulting
// unknown items to false.
func (s *Store) Checklist() map[string]bool {
	stored := readBoolMap(s.kv, checklistKey)
	out := make(map[string]bool, len(TestItems))
	for _, id := range testIDs() {
		out[id] = stored[id]
	}
	return out
}

// SetChecklistItem records one checklist item's state. Unknown ids are
// ignored.
func (s *Store) SetChecklistItem(id string, checked bool) {
	if !isTestID(id) {
		return
	}
	stored := readBoolMap(s.kv, checklistKey)
	stored[id] = checked
	writeBoolMap(s.kv, checklistKey, stored)
}

// ChecklistComplete reports whether all ten test items are checked.
func (s *Store) ChecklistComplete() bool {
	checklist := s.Checklist()
	for _, id := range testIDs() {
		if !checklist[id] {
			return false
		}
	}
	return true
}

// ResetChecklist clears every checkbox.
func (s *Store) ResetChecklist() {
	writeBoolMap(s.kv, checklistKey, map[string]bool{})
}
