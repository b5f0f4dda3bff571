package multipart

import (
	oaswire "github.com/offscale/cdd-web-ng-sub004"
)

// FormField is one entry of a native form container. Exactly one of Value
// and Blob is meaningful: binary and JSON-wrapped payloads carry a Blob,
// everything else a stringified Value.
type FormField struct {
	Name  string
	Value string
	Blob  *oaswire.Blob
}

// FormData is the native multi-field form container returned when nothing
// about the configuration requires byte-level assembly. The caller hands it
// to its HTTP framework, which supplies its own multipart boundary. Field
// order is preserved; the same name may appear multiple times.
type FormData struct {
	fields []FormField
}

// NewFormData creates an empty form container.
func NewFormData() *FormData {
	return &FormData{}
}

// Append adds a stringified field.
func (f *FormData) Append(name, value string) {
	f.fields = append(f.fields, FormField{Name: name, Value: value})
}

// AppendBlob adds a binary or JSON-wrapped field.
func (f *FormData) AppendBlob(name string, blob *oaswire.Blob) {
	f.fields = append(f.fields, FormField{Name: name, Blob: blob})
}

// Fields returns the accumulated fields in insertion order.
func (f *FormData) Fields() []FormField {
	return f.fields
}

// Len returns the number of fields.
func (f *FormData) Len() int {
	return len(f.fields)
}
