package mcpserver

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"
)

// decodeValue materializes a runtime value from its JSON document form.
// An empty document means "no value". Numbers are preserved as json.Number
// so integer formatting survives serialization.
func decodeValue(doc string) (any, error) {
	if strings.TrimSpace(doc) == "" {
		return nil, nil
	}
	dec := json.NewDecoder(strings.NewReader(doc))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("invalid value document: %w", err)
	}
	return out, nil
}

// decodeInto unmarshals a configuration document into a typed descriptor.
// Both YAML and JSON syntax are accepted; YAML is a superset of JSON, so
// one parser covers both. An empty document leaves the target at its zero
// value.
func decodeInto(doc string, target any) error {
	if strings.TrimSpace(doc) == "" {
		return nil
	}
	if err := yaml.Unmarshal([]byte(doc), target); err != nil {
		return fmt.Errorf("invalid configuration document: %w", err)
	}
	return nil
}

// encodeResult renders a transformed value back to a compact JSON document.
func encodeResult(value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("result not representable as JSON: %w", err)
	}
	return string(data), nil
}
