package serializer

import "strings"

// SerializePath produces the already-percent-encoded string to substitute
// for a path template variable. A nil value yields the empty string; an
// unknown style degrades to simple. When jsonContent is set the value is
// JSON-serialized instead of style-serialized.
//
// Styles:
//
//   - simple: no prefix; arrays comma-joined; objects k=v joined with ","
//     (explode) or k,v,k2,v2 (non-explode)
//   - label: "." prefix; joiner "." when exploded, "," otherwise
//   - matrix: ";name=" prefix; one ;name=v (or ;k=v) segment per entry when
//     exploded, a single ;name= pair otherwise
func (s *Serializer) SerializePath(name string, value any, style Style, explode, allowReserved bool, jsonContent bool) string {
	if value == nil {
		return ""
	}
	enc := func(v string) string { return EncodeReserved(v, allowReserved) }

	if jsonContent {
		return enc(s.marshalContent(name, value))
	}

	switch style {
	case StyleLabel:
		joiner := ","
		if explode {
			joiner = "."
		}
		if items, ok := AsArray(value); ok {
			return "." + joinEncoded(items, joiner, enc)
		}
		if keys, fields, ok := AsObject(value); ok {
			if explode {
				return "." + joinPairsEncoded(keys, fields, "=", ".", enc)
			}
			return "." + joinPairsEncoded(keys, fields, ",", ",", enc)
		}
		return "." + enc(FormatPrimitive(value))

	case StyleMatrix:
		if explode {
			if items, ok := AsArray(value); ok {
				var b strings.Builder
				for _, item := range items {
					b.WriteString(";" + enc(name) + "=" + enc(FormatPrimitive(item)))
				}
				return b.String()
			}
			if keys, fields, ok := AsObject(value); ok {
				var b strings.Builder
				for _, k := range keys {
					b.WriteString(";" + enc(k) + "=" + enc(FormatPrimitive(fields[k])))
				}
				return b.String()
			}
		}
		if items, ok := AsArray(value); ok {
			return ";" + enc(name) + "=" + joinEncoded(items, ",", enc)
		}
		if keys, fields, ok := AsObject(value); ok {
			return ";" + enc(name) + "=" + joinPairsEncoded(keys, fields, ",", ",", enc)
		}
		return ";" + enc(name) + "=" + enc(FormatPrimitive(value))

	default: // simple, and the fallback for unknown styles
		if items, ok := AsArray(value); ok {
			return joinEncoded(items, ",", enc)
		}
		if keys, fields, ok := AsObject(value); ok {
			if explode {
				return joinPairsEncoded(keys, fields, "=", ",", enc)
			}
			return joinPairsEncoded(keys, fields, ",", ",", enc)
		}
		return enc(FormatPrimitive(value))
	}
}

// joinEncoded renders array elements through enc and joins them.
func joinEncoded(items []any, joiner string, enc func(string) string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, enc(FormatPrimitive(item)))
	}
	return strings.Join(parts, joiner)
}

// joinPairsEncoded renders object entries as key<kvSep>value segments
// joined by pairSep, encoding keys and values independently.
func joinPairsEncoded(keys []string, fields map[string]any, kvSep, pairSep string, enc func(string) string) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, enc(k)+kvSep+enc(FormatPrimitive(fields[k])))
	}
	return strings.Join(parts, pairSep)
}

// SerializePath produces the path substitution string using the default
// Serializer.
func SerializePath(name string, value any, style Style, explode, allowReserved bool, jsonContent bool) string {
	return defaultSerializer.SerializePath(name, value, style, explode, allowReserved, jsonContent)
}
