// Package contract machine-checks the ProcessingResult shape handed to
// downstream pantry-merge consumers.
package contract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/pantryflow/receipt-ingest/constants"
)

// BuildResultJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing ProcessingResult. Used locally to validate results
// before they are persisted or returned over the wire.
func BuildResultJSONSchema() map[string]any {
	item := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":        map[string]any{"type": "string", "minLength": 1},
			"quantity":    map[string]any{"type": "number", "exclusiveMinimum": 0.0},
			"unit_price":  map[string]any{"type": "number", "minimum": 0.0},
			"total_price": map[string]any{"type": "number", "minimum": 0.0},
			"category":    map[string]any{"type": "string", "enum": constants.AsStringSlice()},
		},
		"required": []string{"name", "quantity", "total_price", "category"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"items": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    item,
			},
			"metadata": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"store_name":   map[string]any{"type": "string", "minLength": 1},
					"receipt_date": map[string]any{"type": "string"},
				},
			},
			"totals": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"subtotal": map[string]any{"type": "number", "minimum": 0.0},
					"tax":      map[string]any{"type": "number", "minimum": 0.0},
					"total":    map[string]any{"type": "number", "minimum": 0.0},
				},
			},
			"confidence_score": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			"processing_notes": map[string]any{"type": "string"},
			"used_fallback":    map[string]any{"type": "boolean"},
		},
		"required": []string{"items", "metadata", "totals", "confidence_score", "processing_notes", "used_fallback"},
	}
}

// ValidateResult validates marshaled ProcessingResult JSON against the
// result schema.
func ValidateResult(data []byte) error {
	b, err := json.Marshal(BuildResultJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("result.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("result.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal result: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("result does not match contract: %w", err)
	}
	return nil
}
