package validation

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrSchemaNotRegistered is returned when validating against an unknown schema
var ErrSchemaNotRegistered = errors.New("schema not registered")

// SchemaValidator validates JSON documents against registered JSON schemas
type SchemaValidator interface {
	Register(name string, schema []byte) error
	Validate(name string, data []byte) error
}

type validator struct {
	mu      sync.RWMutex
	schemas map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &validator{
		schemas: make(map[string]*jsonschema.Schema),
	}
}

// Register compiles a schema document and stores it under name
func (v *validator) Register(name string, schema []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return fmt.Errorf("failed to parse schema %s: %w", name, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		return fmt.Errorf("failed to add schema resource %s: %w", name, err)
	}

	compiled, err := compiler.Compile(name)
	if err != nil {
		return fmt.Errorf("failed to compile schema %s: %w", name, err)
	}

	v.mu.Lock()
	v.schemas[name] = compiled
	v.mu.Unlock()
	return nil
}

// Validate checks data against the schema registered under name
func (v *validator) Validate(name string, data []byte) error {
	v.mu.RLock()
	schema, ok := v.schemas[name]
	v.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSchemaNotRegistered, name)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError flattens a validation error tree into one line per failure
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("validation error: %w", err)
	}

	var lines []string
	collectErrors(validationErr, &lines)
	return fmt.Errorf("schema validation failed:\n%s", strings.Join(lines, "\n"))
}

func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil {
		if keywordPath := err.ErrorKind.KeywordPath(); len(keywordPath) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", location, strings.Join(keywordPath, "."))
		}
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
