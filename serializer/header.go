package serializer

import "strings"

// SerializeHeader produces the wire string for a header parameter. Headers
// always use simple style and are never percent-encoded: arrays
// comma-joined, objects comma-joined as k=v (explode) or k,v (non-explode),
// primitives via the primitive formatter. A nil value yields the empty
// string. When jsonContent is set the value is JSON-serialized instead.
func (s *Serializer) SerializeHeader(name string, value any, explode bool, jsonContent bool) string {
	if value == nil {
		return ""
	}
	if jsonContent {
		return s.marshalContent(name, value)
	}

	if items, ok := AsArray(value); ok {
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, FormatPrimitive(item))
		}
		return strings.Join(parts, ",")
	}

	if keys, fields, ok := AsObject(value); ok {
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			if explode {
				parts = append(parts, k+"="+FormatPrimitive(fields[k]))
			} else {
				parts = append(parts, k+","+FormatPrimitive(fields[k]))
			}
		}
		return strings.Join(parts, ",")
	}

	return FormatPrimitive(value)
}

// SerializeHeader produces the header wire string using the default
// Serializer.
func SerializeHeader(name string, value any, explode bool, jsonContent bool) string {
	return defaultSerializer.SerializeHeader(name, value, explode, jsonContent)
}
