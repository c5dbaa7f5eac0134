// Package schema owns the canonical analysis-entry shape: normalization of
// fresh analysis results, structural validation of stored records, and
// migration of legacy or partial records into the canonical form.
//
// Everything here is total. Corrupt input becomes a nil/empty sentinel,
// never an error or panic across the package boundary; callers drop what
// cannot be coerced instead of crashing a history listing.
package schema

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed entry.schema.json
var entrySchemaJSON string

// entrySchema is the compiled structural schema for canonical entries.
var entrySchema = mustCompileSchema()

func mustCompileSchema() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(entrySchemaJSON))
	if err != nil {
		panic(fmt.Sprintf("schema: invalid embedded entry schema: %v", err))
	}
	return s
}

// ValidateEntry reports whether a raw stored record already has the
// canonical entry shape: every required field present with the right type,
// all seven skill-category arrays actual arrays, numeric scores, non-empty
// id. Valid records take the migration fast path (identity).
func ValidateEntry(raw []byte) bool {
	if len(raw) == 0 {
		return false
	}
	result, err := entrySchema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return false
	}
	return result.Valid()
}
