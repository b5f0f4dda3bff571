package serializer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	oaswire "github.com/offscale/cdd-web-ng-sub004"
)

func TestFormatPrimitive(t *testing.T) {
	ts := time.Date(2024, 3, 15, 10, 30, 0, 500*int(time.Millisecond), time.UTC)
	eastern := time.FixedZone("UTC+5", 5*3600)

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "nil", value: nil, expected: ""},
		{name: "string", value: "hello", expected: "hello"},
		{name: "bool true", value: true, expected: "true"},
		{name: "bool false", value: false, expected: "false"},
		{name: "int", value: 42, expected: "42"},
		{name: "int64", value: int64(-7), expected: "-7"},
		{name: "uint", value: uint(9), expected: "9"},
		{name: "float", value: 3.14, expected: "3.14"},
		{name: "integral float drops fraction", value: 3.0, expected: "3"},
		{name: "json.Number keeps literal", value: json.Number("10.50"), expected: "10.50"},
		{
			name:     "time renders UTC ISO-8601 with milliseconds",
			value:    ts,
			expected: "2024-03-15T10:30:00.500Z",
		},
		{
			name:     "zoned time normalizes to UTC",
			value:    time.Date(2024, 3, 15, 15, 30, 0, 0, eastern),
			expected: "2024-03-15T10:30:00.000Z",
		},
		{name: "time pointer", value: &ts, expected: "2024-03-15T10:30:00.500Z"},
		{name: "nil time pointer", value: (*time.Time)(nil), expected: ""},
		{name: "bytes pass through", value: []byte("raw"), expected: "raw"},
		{name: "blob passes bytes through", value: &oaswire.Blob{Data: []byte("blob")}, expected: "blob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPrimitive(tt.value))
		})
	}
}
