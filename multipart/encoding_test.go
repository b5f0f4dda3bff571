package multipart

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/offscale/cdd-web-ng-sub004/internal/testutil"
	"github.com/offscale/cdd-web-ng-sub004/serializer"
)

func TestEncodingFor(t *testing.T) {
	prefix := &Encoding{ContentType: "application/xml"}
	item := &Encoding{ContentType: "text/plain"}
	cfg := Config{PrefixEncoding: []*Encoding{prefix, nil}, ItemEncoding: item}

	assert.Same(t, prefix, cfg.encodingFor(0))
	assert.Same(t, item, cfg.encodingFor(1), "nil prefix slots fall through to the item encoding")
	assert.Same(t, item, cfg.encodingFor(5))

	assert.Nil(t, Config{}.encodingFor(0))
}

func TestConfigYAMLRoundTrip(t *testing.T) {
	cfg := Config{
		MediaType: "multipart/form-data",
		Encoding: map[string]*Encoding{
			"ids": {
				Style:   serializer.StylePipeDelimited,
				Explode: testutil.BoolPtr(false),
			},
			"attachments": {
				ContentType:  "multipart/mixed",
				ItemEncoding: &Encoding{ContentType: "application/octet-stream"},
			},
		},
	}

	path := testutil.WriteTempYAML(t, cfg)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Config
	require.NoError(t, yaml.Unmarshal(data, &got))

	assert.Equal(t, cfg.MediaType, got.MediaType)
	require.Contains(t, got.Encoding, "ids")
	assert.Equal(t, serializer.StylePipeDelimited, got.Encoding["ids"].Style)
	require.NotNil(t, got.Encoding["ids"].Explode)
	assert.False(t, *got.Encoding["ids"].Explode)
	require.Contains(t, got.Encoding, "attachments")
	require.NotNil(t, got.Encoding["attachments"].ItemEncoding)
	assert.Equal(t, "application/octet-stream", got.Encoding["attachments"].ItemEncoding.ContentType)
	assert.True(t, got.requiresManual())
}
