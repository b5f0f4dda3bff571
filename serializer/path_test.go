package serializer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializePath_Simple(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		explode  bool
		expected string
	}{
		{name: "primitive", value: "hello", expected: "hello"},
		{name: "array comma-joined", value: []any{1, 2, 3}, expected: "1,2,3"},
		{name: "array comma-joined explode", value: []any{1, 2, 3}, explode: true, expected: "1,2,3"},
		{name: "object non-explode", value: map[string]any{"role": "admin", "firstName": "Alex"}, expected: "firstName,Alex,role,admin"},
		{name: "object explode", value: map[string]any{"role": "admin", "firstName": "Alex"}, explode: true, expected: "firstName=Alex,role=admin"},
		{name: "nil yields empty", value: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SerializePath("id", tt.value, StyleSimple, tt.explode, false, false))
		})
	}
}

func TestSerializePath_Label(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		explode  bool
		expected string
	}{
		{name: "primitive", value: 5, expected: ".5"},
		{name: "array non-explode joins with comma", value: []any{3, 4, 5}, expected: ".3,4,5"},
		{name: "array explode joins with dot", value: []any{3, 4, 5}, explode: true, expected: ".3.4.5"},
		{name: "object non-explode", value: map[string]any{"role": "admin"}, expected: ".role,admin"},
		{name: "object explode", value: map[string]any{"a": 1, "b": 2}, explode: true, expected: ".a=1.b=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SerializePath("id", tt.value, StyleLabel, tt.explode, false, false))
		})
	}
}

func TestSerializePath_Matrix(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		explode  bool
		expected string
	}{
		{name: "primitive", value: 5, expected: ";id=5"},
		{name: "array non-explode", value: []any{3, 4, 5}, expected: ";id=3,4,5"},
		{name: "array explode repeats name", value: []any{3, 4, 5}, explode: true, expected: ";id=3;id=4;id=5"},
		{name: "object non-explode", value: map[string]any{"role": "admin"}, expected: ";id=role,admin"},
		{name: "object explode uses keys", value: map[string]any{"firstName": "Alex", "role": "admin"}, explode: true, expected: ";firstName=Alex;role=admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SerializePath("id", tt.value, StyleMatrix, tt.explode, false, false))
		})
	}
}

func TestSerializePath_EncodingAndContent(t *testing.T) {
	t.Run("values are percent-encoded", func(t *testing.T) {
		assert.Equal(t, "a%2Fb", SerializePath("id", "a/b", StyleSimple, false, false, false))
	})

	t.Run("allowReserved keeps reserved characters", func(t *testing.T) {
		assert.Equal(t, "a/b", SerializePath("id", "a/b", StyleSimple, false, true, false))
	})

	t.Run("unknown style degrades to simple", func(t *testing.T) {
		assert.Equal(t, "1,2", SerializePath("id", []any{1, 2}, "zigzag", false, false, false))
	})

	t.Run("JSON content serialization", func(t *testing.T) {
		got := SerializePath("id", map[string]any{"a": 1}, StyleSimple, false, false, true)
		assert.Equal(t, "%7B%22a%22%3A1%7D", got)
	})

	t.Run("JSON content with allowReserved", func(t *testing.T) {
		got := SerializePath("id", []any{1, 2}, StyleSimple, false, true, true)
		assert.Equal(t, "[1,2]", got)
	})
}
