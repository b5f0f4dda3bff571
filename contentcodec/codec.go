package contentcodec

import (
	"encoding/base64"
	"encoding/json"

	oaswire "github.com/offscale/cdd-web-ng-sub004"
	"github.com/offscale/cdd-web-ng-sub004/serializer"
	"github.com/offscale/cdd-web-ng-sub004/wireerrors"
)

// Codec applies content transforms. It carries no state across calls, so a
// single instance is safe for concurrent use. The zero value is not usable;
// call New.
type Codec struct {
	logger oaswire.Logger
	xml    XMLDecoder
}

// Option is a functional option for configuring a Codec.
type Option func(*Codec)

// WithLogger sets the diagnostic logger used to report absorbed transform
// failures.
func WithLogger(logger oaswire.Logger) Option {
	return func(c *Codec) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithXMLDecoder replaces the XML parser used for Decode with media "xml".
func WithXMLDecoder(decoder XMLDecoder) Option {
	return func(c *Codec) {
		if decoder != nil {
			c.xml = decoder
		}
	}
}

// New creates a Codec. With no options it is silent and parses XML with the
// default decoder.
func New(opts ...Option) *Codec {
	c := &Codec{logger: oaswire.NopLogger{}, xml: defaultXMLDecoder{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// defaultCodec backs the package-level Encode and Decode.
var defaultCodec = New()

// Encode transforms a value for the wire: JSON stringification when the
// descriptor requests it, then base64/base64url conversion, then a
// structural walk into properties and items. Nil values and nil descriptors
// pass through unchanged. Encode never fails; a JSON marshal failure leaves
// the value untransformed.
func (c *Codec) Encode(value any, d *Descriptor) any {
	if value == nil || d == nil {
		return value
	}

	v := value
	if d.Encode {
		if _, ok := textBytes(v); !ok {
			data, err := json.Marshal(v)
			if err != nil {
				c.warn("encode", "json", err)
				return value
			}
			v = string(data)
		}
	}

	switch d.ContentEncoding {
	case EncodingBase64:
		if data, ok := textBytes(v); ok {
			return base64.StdEncoding.EncodeToString(data)
		}
		return v
	case EncodingBase64URL:
		if data, ok := textBytes(v); ok {
			// Unpadded URL-safe alphabet.
			return base64.RawURLEncoding.EncodeToString(data)
		}
		return v
	}
	if d.Encode {
		return v
	}

	if items, ok := serializer.AsArray(v); ok && d.Items != nil {
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = c.Encode(item, d.Items)
		}
		return out
	}
	if keys, fields, ok := serializer.AsObject(v); ok && len(d.Properties) > 0 {
		out := make(map[string]any, len(keys))
		for _, key := range keys {
			if pd := d.Properties[key]; pd != nil {
				out[key] = c.Encode(fields[key], pd)
				continue
			}
			out[key] = fields[key]
		}
		return out
	}
	return v
}

// Decode is the inverse transform: base64/base64url text back to bytes,
// then a parse step for embedded JSON or XML, then a structural walk.
// Parse and base64 failures are absorbed and the pre-parse value returned,
// so a non-conformant payload degrades to its raw string form instead of
// aborting the pipeline.
func (c *Codec) Decode(value any, d *Descriptor) any {
	if value == nil || d == nil {
		return value
	}

	v := value
	switch d.ContentEncoding {
	case EncodingBase64:
		if s, ok := v.(string); ok {
			data, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				c.warn("decode", "base64", err)
				return value
			}
			v = data
		}
	case EncodingBase64URL:
		if s, ok := v.(string); ok {
			data, err := base64.RawURLEncoding.DecodeString(s)
			if err != nil {
				c.warn("decode", "base64url", err)
				return value
			}
			v = data
		}
	}

	if d.Decode != "" {
		if data, ok := textBytes(v); ok {
			parsed, err := c.parse(data, d.Decode)
			if err != nil {
				c.warn("decode", d.Decode, err)
				return v
			}
			v = parsed
		}
	}

	if items, ok := serializer.AsArray(v); ok && d.Items != nil {
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = c.Decode(item, d.Items)
		}
		return out
	}
	if keys, fields, ok := serializer.AsObject(v); ok && len(d.Properties) > 0 {
		out := make(map[string]any, len(keys))
		for _, key := range keys {
			if pd := d.Properties[key]; pd != nil {
				out[key] = c.Decode(fields[key], pd)
				continue
			}
			out[key] = fields[key]
		}
		return out
	}
	return v
}

// Encode transforms a value for the wire using the default Codec.
func Encode(value any, d *Descriptor) any {
	return defaultCodec.Encode(value, d)
}

// Decode reverses wire transforms using the default Codec.
func Decode(value any, d *Descriptor) any {
	return defaultCodec.Decode(value, d)
}

// parse materializes an embedded payload. Any media hint other than "xml"
// is treated as JSON.
func (c *Codec) parse(data []byte, media string) (any, error) {
	if media == DecodeXML {
		return c.xml.Decode(data)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// textBytes extracts the raw bytes of a string-like value: string, byte
// slice, or blob payload.
func textBytes(v any) ([]byte, bool) {
	switch t := v.(type) {
	case string:
		return []byte(t), true
	case []byte:
		return t, true
	}
	if blob, ok := oaswire.AsBlob(v); ok {
		return blob.Data, true
	}
	return nil, false
}

func (c *Codec) warn(op, format string, err error) {
	c.logger.Warn("content transform failed",
		"op", op,
		"error", wireerrors.NewTransformError(op, format, err))
}
