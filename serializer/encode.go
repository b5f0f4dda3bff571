package serializer

import "strings"

const upperhex = "0123456789ABCDEF"

// EncodeReserved percent-encodes a string per RFC 3986. Unreserved
// characters (A-Z a-z 0-9 - . _ ~) always pass through; every other byte of
// the UTF-8 encoding becomes a %XX triple with uppercase hex digits.
//
// When allowReserved is set, the RFC 3986 reserved set
//
//	: / ? # [ ] @ ! $ & ' ( ) * + , ; =
//
// also passes through literally. Only those exact characters are exempted;
// everything else stays encoded, so a value that legitimately contains an
// encoded character is never accidentally un-escaped.
func EncodeReserved(value string, allowReserved bool) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		c := value[i]
		if isUnreserved(c) || (allowReserved && isReserved(c)) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

// isUnreserved reports whether c is in the RFC 3986 unreserved set.
func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	}
	return false
}

// isReserved reports whether c is in the RFC 3986 reserved set
// (gen-delims plus sub-delims).
func isReserved(c byte) bool {
	switch c {
	case ':', '/', '?', '#', '[', ']', '@',
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}
