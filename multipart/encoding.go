package multipart

import (
	"strings"

	"github.com/offscale/cdd-web-ng-sub004/serializer"
)

// Encoding describes how one multipart field (or array position) is
// serialized, mirroring the OpenAPI Encoding Object after resolution.
// Descriptors are immutable inputs owned by the upstream resolver.
type Encoding struct {
	// ContentType is the explicit part media type. A multipart/* value
	// turns the field into a nested multipart payload.
	ContentType string `json:"contentType,omitempty" yaml:"contentType,omitempty"`

	// Headers are additional part headers. A Content-Disposition entry
	// overrides the generated disposition line.
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`

	// Style, Explode and AllowReserved apply the parameter flattening
	// rules to the field value before part emission.
	Style         serializer.Style `json:"style,omitempty" yaml:"style,omitempty"`
	Explode       *bool            `json:"explode,omitempty" yaml:"explode,omitempty"`
	AllowReserved bool             `json:"allowReserved,omitempty" yaml:"allowReserved,omitempty"`

	// Encoding carries the per-field descriptors of a nested multipart.
	Encoding map[string]*Encoding `json:"encoding,omitempty" yaml:"encoding,omitempty"`

	// PrefixEncoding carries positional descriptors for nested array
	// bodies; ItemEncoding is the fallback for positions beyond it.
	PrefixEncoding []*Encoding `json:"prefixEncoding,omitempty" yaml:"prefixEncoding,omitempty"`
	ItemEncoding   *Encoding   `json:"itemEncoding,omitempty" yaml:"itemEncoding,omitempty"`
}

// hasStyleHints reports whether the field carries parameter-style
// serialization hints.
func (e *Encoding) hasStyleHints() bool {
	return e != nil && (e.Style != "" || e.Explode != nil || e.AllowReserved)
}

// requiresManual reports whether this field's encoding forces byte-level
// payload assembly.
func (e *Encoding) requiresManual() bool {
	if e == nil {
		return false
	}
	return len(e.Headers) > 0 ||
		strings.HasPrefix(e.ContentType, "multipart/") ||
		e.hasStyleHints() ||
		len(e.PrefixEncoding) > 0 ||
		e.ItemEncoding != nil
}

// Config describes how a whole multipart body is serialized.
type Config struct {
	// MediaType is the payload media type. Empty selects the default:
	// multipart/form-data for object bodies, multipart/mixed for arrays.
	// Setting it forces manual assembly.
	MediaType string `json:"mediaType,omitempty" yaml:"mediaType,omitempty"`

	// Encoding maps field names to their encodings (object bodies).
	Encoding map[string]*Encoding `json:"encoding,omitempty" yaml:"encoding,omitempty"`

	// PrefixEncoding holds positional encodings for array bodies;
	// ItemEncoding is the fallback for positions beyond it.
	PrefixEncoding []*Encoding `json:"prefixEncoding,omitempty" yaml:"prefixEncoding,omitempty"`
	ItemEncoding   *Encoding   `json:"itemEncoding,omitempty" yaml:"itemEncoding,omitempty"`
}

// requiresManual reports whether the configuration forces byte-level
// payload assembly instead of a native form container.
func (c Config) requiresManual() bool {
	if c.MediaType != "" || len(c.PrefixEncoding) > 0 || c.ItemEncoding != nil {
		return true
	}
	for _, enc := range c.Encoding {
		if enc.requiresManual() {
			return true
		}
	}
	return false
}

// encodingFor returns the encoding for an array element at the given
// position: PrefixEncoding[i] if present, else ItemEncoding, else nil.
func (c Config) encodingFor(i int) *Encoding {
	if i < len(c.PrefixEncoding) && c.PrefixEncoding[i] != nil {
		return c.PrefixEncoding[i]
	}
	return c.ItemEncoding
}
