package oaswire

// Blob is the explicit binary variant of a runtime value.
//
// The engine never inspects platform file types; callers that hold a file,
// an upload, or any other binary payload wrap it in a Blob before handing
// it to the engine. A Blob with a Filename is a named blob (the filename is
// carried into multipart Content-Disposition headers); a Blob without one
// is anonymous. A bare []byte is accepted anywhere a Blob is, as an
// anonymous blob with no declared media type.
type Blob struct {
	// Filename is the original file name, if any.
	Filename string

	// MediaType is the declared media type of the payload, if any
	// (e.g. "image/png"). Used for multipart Content-Type inference.
	MediaType string

	// Data is the raw payload.
	Data []byte
}

// Named reports whether the blob carries a filename.
func (b *Blob) Named() bool {
	return b != nil && b.Filename != ""
}

// AsBlob normalizes the binary-like runtime values the engine accepts.
// It returns the value as a *Blob and true for *Blob, Blob, and []byte
// inputs, and nil and false for everything else.
func AsBlob(v any) (*Blob, bool) {
	switch b := v.(type) {
	case *Blob:
		if b == nil {
			return nil, false
		}
		return b, true
	case Blob:
		return &b, true
	case []byte:
		return &Blob{Data: b}, true
	default:
		return nil, false
	}
}
