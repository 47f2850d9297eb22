package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaInvalid    = errors.New("schema invalid")
	ErrSchemaValidation = errors.New("schema validation failed")
)

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// PayloadValidationError surfaces validation issues with the JSON pointer of
// each failing value.
type PayloadValidationError struct {
	Schema string
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrSchemaValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	msg := strings.Join(parts, "; ")
	if e.Schema != "" {
		return e.Schema + ": " + msg
	}
	return msg
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrSchemaValidation
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// Validator is a compiled schema that can be reused across payloads. It is
// safe for concurrent use.
type Validator struct {
	name   string
	schema *jsonschema.Schema
}

// Compile builds a Validator from a JSON Schema document expressed as a map.
func Compile(name string, schema map[string]any) (*Validator, error) {
	if len(schema) == 0 {
		return nil, fmt.Errorf("%w: %s: empty schema", ErrSchemaInvalid, name)
	}
	compiled, err := compileSchema(name, schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSchemaInvalid, name, err)
	}
	return &Validator{name: name, schema: compiled}, nil
}

// MustCompile is like Compile but panics on error. It is meant for schemas
// embedded in the binary.
func MustCompile(name string, schema map[string]any) *Validator {
	v, err := Compile(name, schema)
	if err != nil {
		panic(err)
	}
	return v
}

// Name returns the schema name given at compile time.
func (v *Validator) Name() string {
	return v.name
}

// Validate checks payload against the compiled schema.
func (v *Validator) Validate(payload any) error {
	if payload == nil {
		payload = map[string]any{}
	}
	if err := v.schema.Validate(payload); err != nil {
		return &PayloadValidationError{
			Schema: v.name,
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

// ValidatePayload compiles schema and validates payload in one step.
func ValidatePayload(schema map[string]any, payload map[string]any) error {
	v, err := Compile("schema.json", schema)
	if err != nil {
		return err
	}
	return v.Validate(payload)
}

// ToPayload converts any JSON-marshalable value into the generic form the
// schema validator expects.
func ToPayload(value any) (any, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	var payload any
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return payload, nil
}

func compileSchema(name string, schema map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	resource := name
	if !strings.HasSuffix(resource, ".json") {
		resource += ".json"
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(resource, bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile(resource)
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
