package freedict

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed entry.schema.json
var entrySchemaJSON []byte

var loadEntrySchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(entrySchemaJSON))
})

// validateEntry checks a single raw entry against the embedded schema. It turns
// missing or mistyped fields into a MalformedResponseError naming every offender,
// so the typed decode that follows never sees a partial entry.
func validateEntry(raw []byte) error {
	schema, err := loadEntrySchema()
	if err != nil {
		return fmt.Errorf("freedict: load entry schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return &MalformedResponseError{Reason: "entry is not valid JSON", Err: err}
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", re.Field(), re.Description()))
	}
	return &MalformedResponseError{Reason: "entry schema: " + strings.Join(problems, "; ")}
}
