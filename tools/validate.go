package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// schemaDocument is the exact input_schema object the model receives for d.
func schemaDocument(d ToolDefinition) ([]byte, error) {
	return json.Marshal(d.InputSchema)
}

// CheckSchemas reports every catalog defect: empty or duplicate names, missing handlers and
// input schemas that do not compile as JSON Schema. A nil return means the catalog is usable.
func CheckSchemas(defs []ToolDefinition) error {
	var errs []error
	seen := make(map[string]struct{}, len(defs))
	for i, d := range defs {
		if d.Name == "" {
			errs = append(errs, fmt.Errorf("tool %d: empty name", i))
			continue
		}
		if _, dup := seen[d.Name]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate tool name", d.Name))
		}
		seen[d.Name] = struct{}{}
		if d.Function == nil {
			errs = append(errs, fmt.Errorf("%s: no handler", d.Name))
		}
		doc, err := schemaDocument(d)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: marshal input schema: %w", d.Name, err))
			continue
		}
		if _, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(doc)); err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid input schema: %w", d.Name, err))
		}
	}
	return errors.Join(errs...)
}

// ValidateInput checks input against d's schema and returns the violations, one per entry.
// An error is returned only when validation itself could not run.
func ValidateInput(d ToolDefinition, input json.RawMessage) ([]string, error) {
	doc, err := schemaDocument(d)
	if err != nil {
		return nil, fmt.Errorf("marshal input schema: %w", err)
	}
	if len(input) == 0 {
		input = json.RawMessage("{}")
	}
	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(doc), gojsonschema.NewBytesLoader(input))
	if err != nil {
		return nil, err
	}
	if res.Valid() {
		return nil, nil
	}
	violations := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		violations = append(violations, e.String())
	}
	return violations, nil
}
