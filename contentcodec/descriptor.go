package contentcodec

// Media formats a string value may embed, selected by Descriptor.Decode.
// Any other non-empty value is treated as JSON, matching permissive client
// behavior for unrecognized media hints.
const (
	DecodeJSON = "json"
	DecodeXML  = "xml"
)

// Content encodings understood by the codec. Unknown encodings are passed
// through untransformed.
const (
	EncodingBase64    = "base64"
	EncodingBase64URL = "base64url"
)

// Descriptor drives the content transform for one schema node. It mirrors
// the shape of the resolved JSON schema it was derived from; created and
// owned by the schema-resolution collaborator, consumed read-only here.
type Descriptor struct {
	// Encode requests JSON stringification of non-string values before any
	// content encoding is applied.
	Encode bool `json:"encode,omitempty" yaml:"encode,omitempty"`

	// Decode requests parsing of string values on the inbound path. See
	// DecodeJSON and DecodeXML; empty means no parse step.
	Decode string `json:"decode,omitempty" yaml:"decode,omitempty"`

	// ContentEncoding is the binary-to-text encoding of the value, applied
	// last on encode and undone first on decode.
	ContentEncoding string `json:"contentEncoding,omitempty" yaml:"contentEncoding,omitempty"`

	// Properties holds per-field descriptors for object values.
	Properties map[string]*Descriptor `json:"properties,omitempty" yaml:"properties,omitempty"`

	// Items holds the per-element descriptor for array values.
	Items *Descriptor `json:"items,omitempty" yaml:"items,omitempty"`
}
