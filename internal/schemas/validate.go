// Package schemas validates JSON documents, such as model output, against
// the JSON Schema files shipped under schemas/.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ResolveSchemaPath finds a schema file by trying the path relative to the
// working directory, then one and two levels up. Commands and tests run from
// different directories; this keeps schema lookup working for all of them.
// Returns the first existing absolute path, or "" when none is found.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}
	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}
	return ""
}

// FieldError is a single validation failure at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries every field-level failure from one validation run.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError reports a schema that could not be loaded or parsed, as
// opposed to a document that failed validation.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateJSONString validates JSON document content against schema content.
// Returns nil on success, a *ValidationError on document failures, or a
// *SchemaLoadError when the schema itself is unusable.
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// ValidateJSONFile validates the JSON file at jsonPath against the schema
// file at schemaPath.
func ValidateJSONFile(schemaPath, jsonPath string) error {
	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Message: "reading schema file", Cause: err}
	}
	doc, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("reading JSON file %s: %w", jsonPath, err)
	}
	return ValidateJSONString(string(schema), string(doc))
}
