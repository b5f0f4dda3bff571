package serializer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeReserved(t *testing.T) {
	tests := []struct {
		name          string
		value         string
		allowReserved bool
		expected      string
	}{
		{
			name:     "unreserved characters pass through",
			value:    "AZaz09-._~",
			expected: "AZaz09-._~",
		},
		{
			name:     "space is encoded",
			value:    "a b",
			expected: "a%20b",
		},
		{
			name:     "reserved set encoded by default",
			value:    ":/?#[]@!$&'()*+,;=",
			expected: "%3A%2F%3F%23%5B%5D%40%21%24%26%27%28%29%2A%2B%2C%3B%3D",
		},
		{
			name:          "reserved set preserved with allowReserved",
			value:         ":/?#[]@!$&'()*+,;=",
			allowReserved: true,
			expected:      ":/?#[]@!$&'()*+,;=",
		},
		{
			name:          "allowReserved still encodes non-reserved specials",
			value:         "a b%c\"d",
			allowReserved: true,
			expected:      "a%20b%25c%22d",
		},
		{
			name:     "percent is encoded, never double-unescaped",
			value:    "100%2F",
			expected: "100%252F",
		},
		{
			name:          "pre-encoded triple stays intact under allowReserved",
			value:         "100%2F",
			allowReserved: true,
			expected:      "100%252F",
		},
		{
			name:     "utf-8 multibyte encodes per byte",
			value:    "café",
			expected: "caf%C3%A9",
		},
		{
			name:     "empty string",
			value:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EncodeReserved(tt.value, tt.allowReserved))
		})
	}
}
