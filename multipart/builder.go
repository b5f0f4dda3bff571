package multipart

import (
	"bytes"
	"encoding/json"
	"net/textproto"
	"sort"
	"strings"

	oaswire "github.com/offscale/cdd-web-ng-sub004"
	"github.com/offscale/cdd-web-ng-sub004/serializer"
	"github.com/offscale/cdd-web-ng-sub004/wireerrors"
)

// Payload is the result of serializing a multipart body. Exactly one of
// Form and Raw is set: Form in native mode, Raw in manual mode. In manual
// mode Headers carries the Content-Type (with boundary) that must be
// attached to the outgoing request exactly as returned.
type Payload struct {
	Form    *FormData
	Raw     []byte
	Headers map[string]string
}

// Builder assembles multipart payloads. It carries no state across calls
// beyond its collaborators, so a single instance is safe for concurrent
// use. The zero value is not usable; call New.
type Builder struct {
	logger     oaswire.Logger
	boundaries func() string
}

// Option is a functional option for configuring a Builder.
type Option func(*Builder)

// WithLogger sets the diagnostic logger used to report absorbed
// serialization failures.
func WithLogger(logger oaswire.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithBoundarySource replaces the random boundary generator. Intended for
// tests that need deterministic payloads.
func WithBoundarySource(source func() string) Option {
	return func(b *Builder) {
		if source != nil {
			b.boundaries = source
		}
	}
}

// New creates a Builder. With no options it is silent and uses random
// 128-bit boundary tokens.
func New(opts ...Option) *Builder {
	b := &Builder{logger: oaswire.NopLogger{}, boundaries: newBoundary}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// defaultBuilder backs the package-level Serialize.
var defaultBuilder = New()

// Serialize converts a body value into a multipart payload according to the
// configuration. It never fails: a nil body yields an empty native form,
// array bodies are always assembled manually, and object bodies pick native
// or manual mode from the configuration.
func (b *Builder) Serialize(body any, cfg Config) Payload {
	if body == nil {
		return Payload{Form: NewFormData()}
	}
	if items, ok := serializer.AsArray(body); ok {
		return b.serializeArray(items, cfg)
	}
	keys, fields, ok := serializer.AsObject(body)
	if !ok {
		// A scalar body cannot fill a keyed form container; emit it as a
		// single anonymous part.
		return b.serializeArray([]any{body}, cfg)
	}
	if !cfg.requiresManual() {
		return b.serializeNative(keys, fields, cfg)
	}
	return b.serializeObject(keys, fields, cfg)
}

// Serialize converts a body value into a multipart payload using the
// default Builder.
func Serialize(body any, cfg Config) Payload {
	return defaultBuilder.Serialize(body, cfg)
}

// serializeNative fills a FormData container: blobs as-is, composite or
// JSON-hinted values wrapped as JSON blobs, everything else stringified.
func (b *Builder) serializeNative(keys []string, fields map[string]any, cfg Config) Payload {
	form := NewFormData()
	for _, name := range keys {
		value := fields[name]
		if value == nil {
			continue
		}
		if blob, ok := oaswire.AsBlob(value); ok {
			form.AppendBlob(name, blob)
			continue
		}
		jsonHint := false
		if enc := cfg.Encoding[name]; enc != nil {
			jsonHint = strings.Contains(strings.ToLower(enc.ContentType), "json")
		}
		if jsonHint || isComposite(value) {
			data, err := json.Marshal(value)
			if err != nil {
				b.warn(name, err)
				form.Append(name, serializer.FormatPrimitive(value))
				continue
			}
			form.AppendBlob(name, &oaswire.Blob{MediaType: "application/json", Data: data})
			continue
		}
		form.Append(name, serializer.FormatPrimitive(value))
	}
	return Payload{Form: form}
}

// serializeObject assembles an object body manually. Style-hinted fields go
// through the parameter flattening rules; un-hinted array fields emit one
// part per element under the same name.
func (b *Builder) serializeObject(keys []string, fields map[string]any, cfg Config) Payload {
	var parts []part
	for _, name := range keys {
		value := fields[name]
		if value == nil {
			continue
		}
		enc := cfg.Encoding[name]
		switch {
		case enc.hasStyleHints():
			style := enc.Style
			if style == "" {
				style = serializer.StyleForm
			}
			explode := style == serializer.StyleForm
			if enc.Explode != nil {
				explode = *enc.Explode
			}
			for _, p := range serializer.FlattenField(name, value, style, explode, enc.AllowReserved) {
				parts = append(parts, b.assemblePart(p.Key, p.Value, enc, true))
			}
		default:
			if items, ok := serializer.AsArray(value); ok && (enc == nil || enc.ContentType == "") {
				for _, item := range items {
					parts = append(parts, b.assemblePart(name, item, enc, true))
				}
				continue
			}
			parts = append(parts, b.assemblePart(name, value, enc, true))
		}
	}
	mediaType := cfg.MediaType
	if mediaType == "" {
		mediaType = "multipart/form-data"
	}
	return b.finalize(parts, mediaType)
}

// serializeArray assembles an array body manually: one anonymous part per
// element, with per-position encodings.
func (b *Builder) serializeArray(items []any, cfg Config) Payload {
	var parts []part
	for i, item := range items {
		parts = append(parts, b.assemblePart("", item, cfg.encodingFor(i), false))
	}
	mediaType := cfg.MediaType
	if mediaType == "" {
		mediaType = "multipart/mixed"
	}
	return b.finalize(parts, mediaType)
}

// part is one assembled multipart segment, ready for framing.
type part struct {
	disposition string // empty for anonymous parts
	contentType string
	extra       [][2]string // additional headers, canonical name + value
	body        []byte
}

// assemblePart resolves a part's headers and payload bytes. A resolved
// multipart content type recurses into the Builder with the field's nested
// encoding and adopts the nested Content-Type (which carries the nested
// boundary).
func (b *Builder) assemblePart(name string, value any, enc *Encoding, withDisposition bool) part {
	blob, isBlob := oaswire.AsBlob(value)

	disposition := ""
	if withDisposition {
		disposition = `form-data; name="` + name + `"`
	}

	explicitType := ""
	var extra [][2]string
	if enc != nil {
		explicitType = enc.ContentType
		headerNames := make([]string, 0, len(enc.Headers))
		for k := range enc.Headers {
			headerNames = append(headerNames, k)
		}
		sort.Strings(headerNames)
		for _, k := range headerNames {
			v := enc.Headers[k]
			switch textproto.CanonicalMIMEHeaderKey(k) {
			case "Content-Disposition":
				disposition = v
			case "Content-Type":
				if explicitType == "" {
					explicitType = v
				}
			default:
				extra = append(extra, [2]string{textproto.CanonicalMIMEHeaderKey(k), v})
			}
		}
	}

	if isBlob && blob.Named() && disposition != "" && !strings.Contains(disposition, "filename=") {
		disposition += `; filename="` + blob.Filename + `"`
	}

	contentType := explicitType
	if contentType == "" {
		switch {
		case isBlob && blob.MediaType != "":
			contentType = blob.MediaType
		case isComposite(value):
			contentType = "application/json"
		default:
			contentType = "text/plain"
		}
	}

	if strings.Contains(contentType, "multipart") {
		nestedCfg := Config{MediaType: baseMediaType(contentType)}
		if enc != nil {
			nestedCfg.Encoding = enc.Encoding
			nestedCfg.PrefixEncoding = enc.PrefixEncoding
			nestedCfg.ItemEncoding = enc.ItemEncoding
		}
		nested := b.Serialize(value, nestedCfg)
		return part{
			disposition: disposition,
			contentType: nested.Headers["Content-Type"],
			extra:       extra,
			body:        nested.Raw,
		}
	}

	var body []byte
	switch {
	case isBlob:
		body = blob.Data
	case isComposite(value):
		data, err := json.Marshal(value)
		if err != nil {
			b.warn(name, err)
			data = []byte(serializer.FormatPrimitive(value))
		}
		body = data
	default:
		body = []byte(serializer.FormatPrimitive(value))
	}

	return part{disposition: disposition, contentType: contentType, extra: extra, body: body}
}

// finalize frames the parts with a collision-checked boundary and returns
// the manual payload with its Content-Type header.
func (b *Builder) finalize(parts []part, mediaType string) Payload {
	boundary := b.boundaries()
	for attempt := 1; attempt < boundaryAttempts && collides(parts, boundary); attempt++ {
		boundary = b.boundaries()
	}

	var buf bytes.Buffer
	for _, p := range parts {
		buf.WriteString("--" + boundary + "\r\n")
		if p.disposition != "" {
			buf.WriteString("Content-Disposition: " + p.disposition + "\r\n")
		}
		buf.WriteString("Content-Type: " + p.contentType + "\r\n")
		for _, h := range p.extra {
			buf.WriteString(h[0] + ": " + h[1] + "\r\n")
		}
		buf.WriteString("\r\n")
		buf.Write(p.body)
		buf.WriteString("\r\n")
	}
	buf.WriteString("--" + boundary + "--\r\n")

	return Payload{
		Raw:     buf.Bytes(),
		Headers: map[string]string{"Content-Type": mediaType + "; boundary=" + boundary},
	}
}

// collides reports whether the boundary token occurs inside any assembled
// part payload.
func collides(parts []part, boundary string) bool {
	token := []byte(boundary)
	for _, p := range parts {
		if bytes.Contains(p.body, token) {
			return true
		}
	}
	return false
}

// isComposite reports whether the value is a non-binary array or object.
func isComposite(value any) bool {
	if _, ok := serializer.AsArray(value); ok {
		return true
	}
	_, _, ok := serializer.AsObject(value)
	return ok
}

// baseMediaType strips any parameters from a media type string.
func baseMediaType(contentType string) string {
	if i := strings.Index(contentType, ";"); i >= 0 {
		return strings.TrimSpace(contentType[:i])
	}
	return contentType
}

func (b *Builder) warn(field string, err error) {
	b.logger.Warn("multipart field serialization failed",
		"field", field,
		"error", wireerrors.NewTransformError("encode", "json", err))
}
