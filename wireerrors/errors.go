package wireerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrConfig indicates invalid descriptor or configuration input.
	ErrConfig = errors.New("configuration error")

	// ErrTransform indicates a value transform failed and was absorbed.
	ErrTransform = errors.New("transform error")
)

// ConfigError represents invalid descriptor or configuration input supplied
// at the CLI or MCP boundary. This is the only fatal error surface in the
// module; the engine packages themselves never return errors.
type ConfigError struct {
	// Field is the descriptor field or flag that was invalid
	Field string
	// Reason describes why the input was rejected
	Reason string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Field != "" {
		msg += " in " + e.Field
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// NewConfigError creates a ConfigError for the given field and reason.
func NewConfigError(field, reason string, cause error) *ConfigError {
	return &ConfigError{Field: field, Reason: reason, Cause: cause}
}

// TransformError describes a value transform that failed and was absorbed.
// The engine reports these at Warn level on its diagnostic channel and
// passes the original value through; they never propagate as returned
// errors from an engine call.
type TransformError struct {
	// Op is the transform that failed: "encode" or "decode"
	Op string
	// Format is the wire format involved: "json", "xml", "base64", "base64url"
	Format string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *TransformError) Error() string {
	msg := "transform error"
	if e.Op != "" {
		msg = e.Op + " transform error"
	}
	if e.Format != "" {
		msg += fmt.Sprintf(" (%s)", e.Format)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *TransformError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *TransformError) Is(target error) bool {
	return target == ErrTransform
}

// NewTransformError creates a TransformError for the given operation and format.
func NewTransformError(op, format string, cause error) *TransformError {
	return &TransformError{Op: op, Format: format, Cause: cause}
}
