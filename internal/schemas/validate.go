// Package schemas validates engine results against embedded JSON Schemas
// before they leave the process.
package schemas

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Schema names, one per result contract.
const (
	GapResult                = "gap_result"
	CurriculumRecommendation = "curriculum_recommendation"
	RoadmapPlan              = "roadmap_plan"
	SkillForecast            = "skill_forecast"
	ExtractedSkills          = "extracted_skills"
)

//go:embed files/*.schema.json
var schemaFS embed.FS

var (
	compileOnce sync.Once
	compiled    map[string]*gojsonschema.Schema
	compileErr  error
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
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

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	if ve.Schema != "" {
		sb.WriteString(fmt.Sprintf("%s validation failed:\n", ve.Schema))
	} else {
		sb.WriteString("validation failed:\n")
	}
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Names lists the embedded schemas, sorted.
func Names() []string {
	entries, err := schemaFS.ReadDir("files")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".schema.json"))
	}
	sort.Strings(names)
	return names
}

// Source returns the raw text of an embedded schema.
func Source(name string) (string, error) {
	data, err := schemaFS.ReadFile("files/" + name + ".schema.json")
	if err != nil {
		return "", &SchemaLoadError{Path: name, Message: "unknown schema", Cause: err}
	}
	return string(data), nil
}

func load() (map[string]*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled = make(map[string]*gojsonschema.Schema)
		for _, name := range Names() {
			src, err := Source(name)
			if err != nil {
				compileErr = err
				return
			}
			schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
			if err != nil {
				compileErr = &SchemaLoadError{Path: name, Message: "invalid schema", Cause: err}
				return
			}
			compiled[name] = schema
		}
	})
	return compiled, compileErr
}

// Validate checks a Go value against a named schema. The value is
// serialized with its json tags.
func Validate(name string, v any) error {
	return validate(name, gojsonschema.NewGoLoader(v))
}

// ValidateBytes checks raw JSON against a named schema.
func ValidateBytes(name string, data []byte) error {
	return validate(name, gojsonschema.NewBytesLoader(data))
}

func validate(name string, doc gojsonschema.JSONLoader) error {
	all, err := load()
	if err != nil {
		return err
	}
	schema, ok := all[name]
	if !ok {
		return &SchemaLoadError{Path: name, Message: "unknown schema"}
	}

	result, err := schema.Validate(doc)
	if err != nil {
		return fmt.Errorf("failed to load document for %s: %w", name, err)
	}
	return toValidationError(name, result)
}

// ValidateJSONString validates JSON string content against schema string content
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
	return toValidationError("", result)
}

func toValidationError(name string, result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Schema: name,
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
