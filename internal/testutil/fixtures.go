// Package testutil provides test fixtures shared by the engine's unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/offscale/cdd-web-ng-sub004/serializer"
)

// BoolPtr returns a pointer to b, for populating optional explode flags.
func BoolPtr(b bool) *bool {
	return &b
}

// NewQueryDescriptor creates a query parameter descriptor with the
// per-location defaults left unset.
func NewQueryDescriptor(name string) serializer.Descriptor {
	return serializer.Descriptor{
		Name:     name,
		Location: serializer.LocationQuery,
	}
}

// NewStyledDescriptor creates a descriptor with an explicit style and
// explode flag, for exercising the non-default combinations.
func NewStyledDescriptor(name string, location serializer.Location, style serializer.Style, explode bool) serializer.Descriptor {
	return serializer.Descriptor{
		Name:     name,
		Location: location,
		Style:    style,
		Explode:  BoolPtr(explode),
	}
}

// NewPetBody creates a small object body with a scalar, an array, and a
// nested object field, covering the common flattening shapes.
func NewPetBody() map[string]any {
	return map[string]any{
		"name": "rex",
		"tags": []any{"dog", "good"},
		"meta": map[string]any{"kind": "dog"},
	}
}

// WriteTempYAML marshals a descriptor or configuration to YAML and writes
// it to a temporary file, returning its path. The file is cleaned up when
// the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}

// WriteTempJSON marshals a descriptor or configuration to JSON and writes
// it to a temporary file, returning its path. The file is cleaned up when
// the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.json")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary JSON file: %v", err)
	}

	return tmpFile
}
