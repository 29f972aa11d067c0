package processor

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildRecordJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing a capture record snapshot. Fields are allowed to be
// empty mid-capture; the schema constrains shape, not completeness.
func BuildRecordJSONSchema() map[string]any {
	digits := map[string]any{"type": "string", "pattern": `^\d*$`}
	text := map[string]any{"type": "string"}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"radiopharmaceutical":         text,
			"rx":                          digits,
			"vial_rx":                     digits,
			"patient_id":                  text,
			"actual_amount":               text,
			"calibration_date":            text,
			"lot_number":                  text,
			"ordered_amount":              text,
			"volume":                      text,
			"manufacturer":                text,
			"radioactivity_concentration": text,
			"new_label_image_url":         text,
			"new_vial_image_url":          text,
		},
		"required": []string{"radiopharmaceutical", "rx", "vial_rx", "patient_id"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
