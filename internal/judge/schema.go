package judge

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ResponseSchema is the JSON-Schema the structured judgment response must
// satisfy before decoding.
func ResponseSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"verdict":   map[string]any{"type": "string", "minLength": 1},
			"score":     map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
			"rationale": map[string]any{"type": "string"},
		},
		"required": []string{"verdict"},
	}
}

// ValidateJSONAgainstSchema compiles the given schema (as a generic map) and
// validates doc against it.
func ValidateJSONAgainstSchema(schema map[string]any, doc []byte) error {
	sb, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", bytes.NewReader(sb)); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	if err := compiled.Validate(v); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}
