package contentcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oaswire "github.com/offscale/cdd-web-ng-sub004"
)

// recordingLogger captures Warn calls for assertions.
type recordingLogger struct {
	oaswire.NopLogger
	warnings []string
}

func (l *recordingLogger) Warn(msg string, _ ...any) {
	l.warnings = append(l.warnings, msg)
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name       string
		value      any
		descriptor *Descriptor
		want       any
	}{
		{
			name:       "nil value is identity",
			value:      nil,
			descriptor: &Descriptor{ContentEncoding: EncodingBase64},
			want:       nil,
		},
		{
			name:       "nil descriptor is identity",
			value:      "raw",
			descriptor: nil,
			want:       "raw",
		},
		{
			name:       "base64 bytes",
			value:      []byte("test-content"),
			descriptor: &Descriptor{ContentEncoding: EncodingBase64},
			want:       "dGVzdC1jb250ZW50",
		},
		{
			name:       "base64 string",
			value:      "test-content",
			descriptor: &Descriptor{ContentEncoding: EncodingBase64},
			want:       "dGVzdC1jb250ZW50",
		},
		{
			name:       "base64 blob payload",
			value:      &oaswire.Blob{Data: []byte("test-content")},
			descriptor: &Descriptor{ContentEncoding: EncodingBase64},
			want:       "dGVzdC1jb250ZW50",
		},
		{
			name:       "base64url is unpadded and url-safe",
			value:      []byte{0xfb, 0xff},
			descriptor: &Descriptor{ContentEncoding: EncodingBase64URL},
			want:       "-_8",
		},
		{
			name:       "unknown encoding passes through",
			value:      "raw",
			descriptor: &Descriptor{ContentEncoding: "base32"},
			want:       "raw",
		},
		{
			name:       "encode flag stringifies composites",
			value:      map[string]any{"a": 1},
			descriptor: &Descriptor{Encode: true},
			want:       `{"a":1}`,
		},
		{
			name:       "encode flag leaves strings alone",
			value:      "already text",
			descriptor: &Descriptor{Encode: true},
			want:       "already text",
		},
		{
			name:       "encode then base64",
			value:      map[string]any{"a": 1},
			descriptor: &Descriptor{Encode: true, ContentEncoding: EncodingBase64},
			want:       "eyJhIjoxfQ==",
		},
		{
			name:  "properties transform matching fields only",
			value: map[string]any{"payload": []byte("hi"), "label": "plain"},
			descriptor: &Descriptor{Properties: map[string]*Descriptor{
				"payload": {ContentEncoding: EncodingBase64},
			}},
			want: map[string]any{"payload": "aGk=", "label": "plain"},
		},
		{
			name:       "items transform each element",
			value:      []any{"a", "b"},
			descriptor: &Descriptor{Items: &Descriptor{ContentEncoding: EncodingBase64}},
			want:       []any{"YQ==", "Yg=="},
		},
		{
			name:       "no transform and no children is identity",
			value:      42,
			descriptor: &Descriptor{},
			want:       42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.value, tt.descriptor))
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		value      any
		descriptor *Descriptor
		want       any
	}{
		{
			name:       "nil value is identity",
			value:      nil,
			descriptor: &Descriptor{Decode: DecodeJSON},
			want:       nil,
		},
		{
			name:       "base64 text back to bytes",
			value:      "dGVzdC1jb250ZW50",
			descriptor: &Descriptor{ContentEncoding: EncodingBase64},
			want:       []byte("test-content"),
		},
		{
			name:       "base64url text back to bytes",
			value:      "-_8",
			descriptor: &Descriptor{ContentEncoding: EncodingBase64URL},
			want:       []byte{0xfb, 0xff},
		},
		{
			name:       "json media is parsed",
			value:      `{"a":1}`,
			descriptor: &Descriptor{Decode: DecodeJSON},
			want:       map[string]any{"a": float64(1)},
		},
		{
			name:       "unrecognized media falls back to json",
			value:      `[1,2]`,
			descriptor: &Descriptor{Decode: "yaml"},
			want:       []any{float64(1), float64(2)},
		},
		{
			name:       "base64 wrapping an embedded json document",
			value:      "eyJhIjoxfQ==",
			descriptor: &Descriptor{ContentEncoding: EncodingBase64, Decode: DecodeJSON},
			want:       map[string]any{"a": float64(1)},
		},
		{
			name:  "parsed structure recurses into property descriptors",
			value: `{"inner":"[1,2]"}`,
			descriptor: &Descriptor{
				Decode: DecodeJSON,
				Properties: map[string]*Descriptor{
					"inner": {Decode: DecodeJSON},
				},
			},
			want: map[string]any{"inner": []any{float64(1), float64(2)}},
		},
		{
			name:       "structural recursion without a decode flag",
			value:      []any{"YQ=="},
			descriptor: &Descriptor{Items: &Descriptor{ContentEncoding: EncodingBase64}},
			want:       []any{[]byte("a")},
		},
		{
			name:       "non-string value skips the base64 step",
			value:      []byte{1, 2},
			descriptor: &Descriptor{ContentEncoding: EncodingBase64},
			want:       []byte{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.value, tt.descriptor))
		})
	}
}

func TestDecode_XML(t *testing.T) {
	got := Decode("<pet><name>rex</name></pet>", &Descriptor{Decode: DecodeXML})

	doc, ok := got.(map[string]any)
	require.True(t, ok, "expected a document map, got %T", got)
	pet, ok := doc["pet"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "rex", pet["name"])
}

func TestDecode_FailureIsNonFatal(t *testing.T) {
	t.Run("malformed json returns the raw string", func(t *testing.T) {
		logger := &recordingLogger{}
		codec := New(WithLogger(logger))

		got := codec.Decode("{not json", &Descriptor{Decode: DecodeJSON})

		assert.Equal(t, "{not json", got)
		assert.Len(t, logger.warnings, 1)
	})

	t.Run("malformed xml returns the raw string", func(t *testing.T) {
		got := New().Decode("<unclosed", &Descriptor{Decode: DecodeXML})
		assert.Equal(t, "<unclosed", got)
	})

	t.Run("malformed base64 returns the raw string", func(t *testing.T) {
		got := New().Decode("%%%", &Descriptor{ContentEncoding: EncodingBase64})
		assert.Equal(t, "%%%", got)
	})
}

func TestEncode_FailureIsNonFatal(t *testing.T) {
	logger := &recordingLogger{}
	codec := New(WithLogger(logger))

	// A channel cannot be marshaled to JSON.
	unmarshalable := map[string]any{"ch": make(chan int)}
	got := codec.Encode(unmarshalable, &Descriptor{Encode: true})

	assert.Equal(t, unmarshalable, got)
	assert.Len(t, logger.warnings, 1)
}

func TestRoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte("test-content"),
		[]byte{0x00, 0xff, 0x10, 0x80},
		{},
	}
	for _, encoding := range []string{EncodingBase64, EncodingBase64URL} {
		d := &Descriptor{ContentEncoding: encoding}
		for _, payload := range payloads {
			encoded := Encode(payload, d)
			require.IsType(t, "", encoded)
			assert.Equal(t, payload, Decode(encoded, d), "encoding %s", encoding)
		}
	}
}

func TestDecode_CustomXMLDecoder(t *testing.T) {
	codec := New(WithXMLDecoder(stubXMLDecoder{}))
	got := codec.Decode("<whatever/>", &Descriptor{Decode: DecodeXML})
	assert.Equal(t, "stubbed", got)
}

type stubXMLDecoder struct{}

func (stubXMLDecoder) Decode([]byte) (any, error) { return "stubbed", nil }
