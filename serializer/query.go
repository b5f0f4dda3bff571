package serializer

import "strings"

// Pair is a single (key, value) wire entry produced by query or form-field
// serialization. Values are held raw; percent-encoding is applied when the
// accumulator is rendered.
type Pair struct {
	Key   string
	Value string

	// AllowReserved marks that the value may keep RFC 3986 reserved
	// characters literal when the pair is percent-encoded.
	AllowReserved bool
}

// QueryParams is an order-preserving accumulator of query parameter pairs.
// It is consumable either directly (as a framework parameter bag) or as a
// rendered query string via Encode.
type QueryParams []Pair

// Add appends a raw pair.
func (q *QueryParams) Add(key, value string) {
	*q = append(*q, Pair{Key: key, Value: value})
}

// add appends a pair carrying the descriptor's allowReserved flag.
func (q *QueryParams) add(key, value string, allowReserved bool) {
	*q = append(*q, Pair{Key: key, Value: value, AllowReserved: allowReserved})
}

// Encode renders the accumulated pairs as a percent-encoded query string,
// preserving insertion order. Pairs marked AllowReserved keep RFC 3986
// reserved characters literal in their values; keys are always fully
// encoded.
func (q QueryParams) Encode() string {
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(EncodeReserved(p.Key, false))
		b.WriteByte('=')
		b.WriteString(EncodeReserved(p.Value, p.AllowReserved))
	}
	return b.String()
}

// delimiterFor returns the array/object joining delimiter for a style:
// space for spaceDelimited, pipe for pipeDelimited, comma otherwise.
func delimiterFor(style Style) string {
	switch style {
	case StyleSpaceDelimited:
		return " "
	case StylePipeDelimited:
		return "|"
	default:
		return ","
	}
}

// FlattenField applies the style/explode joining rules to a single field
// value and returns the resulting pairs. This is the shared vocabulary
// between query serialization and multipart field flattening:
//
//   - array + explode: one pair per element under name
//   - array + !explode: one pair, elements joined with the style delimiter
//   - object + explode: one pair per key, the key becoming the pair name
//   - object + !explode: one pair, k,v,k2,v2... joined with the style delimiter
//   - primitive: one pair
//
// A nil value yields no pairs.
func FlattenField(name string, value any, style Style, explode, allowReserved bool) []Pair {
	if value == nil {
		return nil
	}
	delim := delimiterFor(style)

	if items, ok := AsArray(value); ok {
		if explode {
			pairs := make([]Pair, 0, len(items))
			for _, item := range items {
				pairs = append(pairs, Pair{Key: name, Value: FormatPrimitive(item), AllowReserved: allowReserved})
			}
			return pairs
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, FormatPrimitive(item))
		}
		return []Pair{{Key: name, Value: strings.Join(parts, delim), AllowReserved: allowReserved}}
	}

	if keys, fields, ok := AsObject(value); ok {
		if explode {
			pairs := make([]Pair, 0, len(keys))
			for _, k := range keys {
				pairs = append(pairs, Pair{Key: k, Value: FormatPrimitive(fields[k]), AllowReserved: allowReserved})
			}
			return pairs
		}
		parts := make([]string, 0, len(keys)*2)
		for _, k := range keys {
			parts = append(parts, k, FormatPrimitive(fields[k]))
		}
		return []Pair{{Key: name, Value: strings.Join(parts, delim), AllowReserved: allowReserved}}
	}

	return []Pair{{Key: name, Value: FormatPrimitive(value), AllowReserved: allowReserved}}
}

// SerializeQuery appends the wire pairs for one query parameter to the
// accumulator. A nil value is a no-op. A JSON ContentType short-circuits
// style logic and appends a single JSON-serialized pair. Styles behave per
// the OpenAPI rules; any unsupported style/value combination falls back to
// the default form behavior.
func (s *Serializer) SerializeQuery(params *QueryParams, d Descriptor, value any) {
	if value == nil || params == nil {
		return
	}
	if d.Location == "" {
		d.Location = LocationQuery
	}
	d = d.WithDefaults()

	if d.JSONContent() {
		params.add(d.Name, s.marshalContent(d.Name, value), d.AllowReserved)
		return
	}

	switch d.Style {
	case StyleSpaceDelimited, StylePipeDelimited:
		if _, ok := AsArray(value); ok && !*d.Explode {
			*params = append(*params, FlattenField(d.Name, value, d.Style, false, d.AllowReserved)...)
			return
		}
	case StyleDeepObject:
		if _, _, ok := AsObject(value); ok && *d.Explode {
			s.serializeDeepObject(params, d.Name, value, d.AllowReserved)
			return
		}
	}

	// form style, and the fallback for every unsupported combination
	*params = append(*params, FlattenField(d.Name, value, StyleForm, *d.Explode, d.AllowReserved)...)
}

// serializeDeepObject emits name[key]=value pairs, recursing into nested
// objects and arrays with bracketed path segments (name[key][0]=v).
func (s *Serializer) serializeDeepObject(params *QueryParams, prefix string, value any, allowReserved bool) {
	if keys, fields, ok := AsObject(value); ok {
		for _, k := range keys {
			s.serializeDeepObject(params, prefix+"["+k+"]", fields[k], allowReserved)
		}
		return
	}
	if items, ok := AsArray(value); ok {
		for i, item := range items {
			s.serializeDeepObject(params, prefix+"["+FormatPrimitive(i)+"]", item, allowReserved)
		}
		return
	}
	if value == nil {
		return
	}
	params.add(prefix, FormatPrimitive(value), allowReserved)
}

// SerializeQuery appends the wire pairs for one query parameter to the
// accumulator using the default Serializer.
func SerializeQuery(params *QueryParams, d Descriptor, value any) {
	defaultSerializer.SerializeQuery(params, d, value)
}
