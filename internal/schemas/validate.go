// Package schemas validates the assistant reply envelope against an
// embedded JSON Schema before any of it is normalized into resume state.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed reply.schema.json
var replySchema string

// FieldError is a single validation failure at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates schema validation failures.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("reply validation failed:")
	for _, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", err.Field, err.Message))
	}
	return sb.String()
}

// ValidateReply checks a decoded assistant reply against the envelope
// schema: a "type" of question or resume, an optional message, and a resume
// object required when the type is resume. The resume body itself is left to
// the normalizer, which is tolerant by design.
func ValidateReply(reply any) error {
	schemaLoader := gojsonschema.NewStringLoader(replySchema)
	docLoader := gojsonschema.NewGoLoader(reply)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("failed to validate reply: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
