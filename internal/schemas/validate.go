// Package schemas validates outbound trigger payloads against the
// per-platform JSON Schemas that define the provider wire contract.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/karanpatel/jobscout/internal/platform"
)

//go:embed payloads/*.schema.json
var payloadSchemas embed.FS

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Platform string
	Errors   []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("payload validation failed for %s:\n", ve.Platform))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing a schema itself
type SchemaLoadError struct {
	Platform string
	Cause    error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load payload schema for %s: %v", e.Platform, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidatePayload checks a built trigger payload against its platform's
// schema before it goes on the wire.
func ValidatePayload(p platform.Platform, payload platform.Payload) error {
	schemaBytes, err := payloadSchemas.ReadFile(fmt.Sprintf("payloads/%s_payload.schema.json", p.Slug()))
	if err != nil {
		return &SchemaLoadError{Platform: p.Display(), Cause: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewGoLoader(payload),
	)
	if err != nil {
		return &SchemaLoadError{Platform: p.Display(), Cause: err}
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Platform: p.Display()}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
