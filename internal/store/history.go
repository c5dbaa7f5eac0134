package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/placement-readiness/internal/analysis"
	"github.com/jonathan/placement-readiness/internal/schema"
	"github.com/jonathan/placement-readiness/internal/types"
)

// Persisted keys. The history list is a JSON array of canonical entries;
// the latest-id marker is a single id string.
const (
	historyKey  = "placement_prep_history"
	latestIDKey = "placement_prep_latest_id"
)

// History owns the persisted analysis-entry list. Callers always receive
// migrated copies, never handles into storage, and every method degrades
// to a sentinel instead of failing: reads of corrupt state yield empty
// results and write failures are swallowed (nothing persists, nothing
// crashes).
type History struct {
	kv KV
}

// NewHistory creates a history store over the given KV.
func NewHistory(kv KV) *History {
	return &History{kv: kv}
}

// rawList reads the stored entry list, treating a missing key, parse
// failure, or non-array value as an empty list.
func (h *History) rawList() []json.RawMessage {
	raw, ok := h.kv.Get(historyKey)
	if !ok {
		return nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}

// writeList persists the entry list, swallowing failures.
func (h *History) writeList(list []json.RawMessage) {
	data, err := json.Marshal(list)
	if err != nil {
		return
	}
	_ = h.kv.Set(historyKey, data)
}

// GetHistory returns every stored entry that survives migration, newest
// first by createdAt, plus the count of records that had to be dropped.
func (h *History) GetHistory() ([]*types.AnalysisEntry, int) {
	raw := h.rawList()
	entries := make([]*types.AnalysisEntry, 0, len(raw))
	skipped := 0
	for _, record := range raw {
		migrated := schema.MigrateEntry(record)
		if migrated == nil {
			skipped++
			continue
		}
		entries = append(entries, migrated)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return parseCreatedAt(entries[i].CreatedAt).After(parseCreatedAt(entries[j].CreatedAt))
	})
	return entries, skipped
}

func parseCreatedAt(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// newEntryID builds a per-save unique id from the current time and a
// random suffix.
func newEntryID() string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("pp-%d-%s", time.Now().UnixMilli(), suffix)
}

// SaveEntry normalizes an analysis result to the canonical shape, assigns
// it an id and createdAt, prepends it to the stored list, and records it
// as the latest entry. Returns the new id, or "" (with no write) when the
// result cannot be normalized.
func (h *History) SaveEntry(result *analysis.Result) string {
	normalized := schema.NormalizeAnalysisToEntry(result)
	if normalized == nil {
		return ""
	}

	normalized.ID = newEntryID()
	normalized.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	record, err := json.Marshal(normalized)
	if err != nil {
		return ""
	}

	list := append([]json.RawMessage{record}, h.rawList()...)
	h.writeList(list)
	_ = h.kv.Set(latestIDKey, []byte(normalized.ID))
	return normalized.ID
}

// GetEntryByID returns the migrated entry for an id, or nil when the id is
// empty, unknown, or the stored record cannot be coerced.
func (h *History) GetEntryByID(id string) *types.AnalysisEntry {
	if id == "" {
		return nil
	}
	record, _ := h.findRecord(id)
	if record == nil {
		return nil
	}
	return schema.MigrateEntry(record)
}

// findRecord locates the raw stored record with the given id.
func (h *History) findRecord(id string) (json.RawMessage, int) {
	for i, record := range h.rawList() {
		var probe struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(record, &probe); err != nil {
			continue
		}
		if probe.ID == id {
			return record, i
		}
	}
	return nil, -1
}

// UpdateEntry shallow-merges updates over the raw stored record at id and
// persists the list. No-op when the id is not found. The merged record is
// not re-validated; callers are responsible for keeping it coherent
// (confidence map, finalScore, updatedAt, companyIntel, roundMapping).
func (h *History) UpdateEntry(id string, updates map[string]any) {
	if id == "" || len(updates) == 0 {
		return
	}
	list := h.rawList()
	record, index := h.findRecord(id)
	if index < 0 {
		return
	}

	var current map[string]any
	if err := json.Unmarshal(record, &current); err != nil || current == nil {
		return
	}
	for key, value := range updates {
		current[key] = value
	}
	merged, err := json.Marshal(current)
	if err != nil {
		return
	}
	list[index] = merged
	h.writeList(list)
}

// LatestID returns the id of the most recently saved entry, or "".
func (h *History) LatestID() string {
	raw, ok := h.kv.Get(latestIDKey)
	if !ok {
		return ""
	}
	return string(raw)
}
