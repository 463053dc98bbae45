package mcpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// validateArgs checks raw tools/call arguments against a tool's input schema.
func validateArgs(schema map[string]any, raw json.RawMessage) error {
	if len(schema) == 0 {
		return nil
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schema), gojsonschema.NewBytesLoader(normalizeArgs(raw)))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return &InvalidArgumentsError{Details: errs}
	}

	return nil
}

// decodeArgs decodes tools/call arguments keeping numbers as json.Number, so
// integers beyond 2^53 reach downstream services unchanged.
func decodeArgs(raw json.RawMessage) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(normalizeArgs(raw)))
	dec.UseNumber()

	var args map[string]any
	if err := dec.Decode(&args); err != nil {
		return nil, &InvalidArgumentsError{Details: []string{"arguments must be a JSON object"}}
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

// normalizeArgs maps absent or null arguments to an empty object.
func normalizeArgs(raw json.RawMessage) []byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []byte("{}")
	}
	return trimmed
}

// InvalidArgumentsError lists schema violations of a tools/call request.
type InvalidArgumentsError struct {
	Details []string
}

func (e *InvalidArgumentsError) Error() string {
	return "invalid arguments: " + strings.Join(e.Details, "; ")
}
