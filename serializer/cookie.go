package serializer

import "strings"

// SerializeCookie produces one or more cookie-pairs for a cookie parameter,
// ready to join into a Cookie header. Cookies use form style; exploded
// composites expand into multiple name=value pairs joined with "; " per the
// RFC 6265 cookie-pair grammar (not "&"). A nil value yields the empty
// string; unknown styles degrade to form. When jsonContent is set the value
// is JSON-serialized into a single pair.
func (s *Serializer) SerializeCookie(name string, value any, style Style, explode bool, jsonContent bool) string {
	if value == nil {
		return ""
	}
	if jsonContent {
		return name + "=" + s.marshalContent(name, value)
	}

	// All defined cookie serialization is form-shaped; the style argument
	// only matters for its delimiter in the non-exploded joins.
	if style == "" {
		style = StyleForm
	}

	if items, ok := AsArray(value); ok {
		if explode {
			parts := make([]string, 0, len(items))
			for _, item := range items {
				parts = append(parts, name+"="+FormatPrimitive(item))
			}
			return strings.Join(parts, "; ")
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, FormatPrimitive(item))
		}
		return name + "=" + strings.Join(parts, delimiterFor(style))
	}

	if keys, fields, ok := AsObject(value); ok {
		if explode {
			parts := make([]string, 0, len(keys))
			for _, k := range keys {
				parts = append(parts, k+"="+FormatPrimitive(fields[k]))
			}
			return strings.Join(parts, "; ")
		}
		parts := make([]string, 0, len(keys)*2)
		for _, k := range keys {
			parts = append(parts, k, FormatPrimitive(fields[k]))
		}
		return name + "=" + strings.Join(parts, delimiterFor(style))
	}

	return name + "=" + FormatPrimitive(value)
}

// SerializeCookie produces the cookie-pair string using the default
// Serializer.
func SerializeCookie(name string, value any, style Style, explode bool, jsonContent bool) string {
	return defaultSerializer.SerializeCookie(name, value, style, explode, jsonContent)
}
