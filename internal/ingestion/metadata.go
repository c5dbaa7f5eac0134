package ingestion

import (
	"strings"
	"unicode/utf8"
)

// shortJDThreshold is the character count below which a JD is flagged as
// probably too short for meaningful extraction.
const shortJDThreshold = 200

// Metadata describes an ingested JD.
type Metadata struct {
	CharCount int  `json:"char_count"`
	WordCount int  `json:"word_count"`
	ShortJD   bool `json:"short_jd"`
}

// NewMetadata computes metadata for cleaned JD text.
func NewMetadata(text string) *Metadata {
	chars := utf8.RuneCountInString(text)
	return &Metadata{
		CharCount: chars,
		WordCount: len(strings.Fields(text)),
		ShortJD:   chars < shortJDThreshold,
	}
}
