package serializer

import (
	"strings"

	"github.com/offscale/cdd-web-ng-sub004/wireerrors"
)

// Location identifies where a parameter is carried on the wire.
type Location string

// Parameter locations defined by the OpenAPI Specification.
const (
	LocationPath   Location = "path"
	LocationQuery  Location = "query"
	LocationHeader Location = "header"
	LocationCookie Location = "cookie"
)

// Style is an OpenAPI parameter serialization strategy.
type Style string

// Parameter styles defined by the OpenAPI Specification.
const (
	StyleSimple         Style = "simple"
	StyleLabel          Style = "label"
	StyleMatrix         Style = "matrix"
	StyleForm           Style = "form"
	StyleSpaceDelimited Style = "spaceDelimited"
	StylePipeDelimited  Style = "pipeDelimited"
	StyleDeepObject     Style = "deepObject"
)

// Descriptor is the fully resolved serialization description of a single
// parameter, produced by an upstream schema-resolution collaborator.
// Descriptors are immutable inputs; the engine never modifies them.
//
// When Style or Explode are absent the per-location defaults apply (see the
// package documentation). ContentType is mutually exclusive with style-based
// serialization: a JSON content type wins over any style settings.
type Descriptor struct {
	// Name is the parameter name as it appears on the wire.
	Name string `json:"name" yaml:"name"`

	// Location is the parameter location: path, query, header, or cookie.
	Location Location `json:"in" yaml:"in"`

	// Style selects the serialization strategy. Empty means the
	// per-location default.
	Style Style `json:"style,omitempty" yaml:"style,omitempty"`

	// Explode controls whether composite values expand into multiple wire
	// entries. Nil means the per-location default.
	Explode *bool `json:"explode,omitempty" yaml:"explode,omitempty"`

	// AllowReserved permits RFC 3986 reserved characters to remain
	// unescaped in the serialized value.
	AllowReserved bool `json:"allowReserved,omitempty" yaml:"allowReserved,omitempty"`

	// ContentType, when set, requests content-based serialization instead
	// of style-based serialization.
	ContentType string `json:"contentType,omitempty" yaml:"contentType,omitempty"`
}

// WithDefaults returns a copy of the descriptor with Style and Explode
// populated per the location defaults.
func (d Descriptor) WithDefaults() Descriptor {
	if d.Style == "" {
		switch d.Location {
		case LocationPath, LocationHeader:
			d.Style = StyleSimple
		default:
			d.Style = StyleForm
		}
	}
	if d.Explode == nil {
		// Only query parameters default to explode=true.
		explode := d.Location == LocationQuery
		d.Explode = &explode
	}
	return d
}

// Exploded reports the effective explode flag, applying defaults.
func (d Descriptor) Exploded() bool {
	d = d.WithDefaults()
	return *d.Explode
}

// JSONContent reports whether the descriptor requests JSON content-based
// serialization.
func (d Descriptor) JSONContent() bool {
	return strings.Contains(strings.ToLower(d.ContentType), "json")
}

// Validate checks that the descriptor can be used at all. Only structural
// problems are rejected (missing name, unknown location); unknown styles
// are deliberately accepted and degrade at serialization time.
func (d Descriptor) Validate() error {
	if d.Name == "" {
		return wireerrors.NewConfigError("name", "parameter name is required", nil)
	}
	switch d.Location {
	case LocationPath, LocationQuery, LocationHeader, LocationCookie:
		return nil
	default:
		return wireerrors.NewConfigError("in", "must be one of path, query, header, cookie", nil)
	}
}
