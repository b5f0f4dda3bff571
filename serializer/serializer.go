package serializer

import (
	"encoding/json"

	oaswire "github.com/offscale/cdd-web-ng-sub004"
	"github.com/offscale/cdd-web-ng-sub004/wireerrors"
)

// Serializer serializes parameter values according to OpenAPI
// style/explode/allowReserved rules. It carries no state beyond the
// diagnostic logger, so a single instance is safe for concurrent use.
//
// The zero value is usable and logs nothing; the package-level functions
// delegate to a shared default instance.
type Serializer struct {
	logger oaswire.Logger
}

// Option is a functional option for configuring a Serializer.
type Option func(*Serializer)

// WithLogger sets the diagnostic logger used to report absorbed
// serialization failures.
func WithLogger(logger oaswire.Logger) Option {
	return func(s *Serializer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Serializer. With no options it is silent (NopLogger).
func New(opts ...Option) *Serializer {
	s := &Serializer{logger: oaswire.NopLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// defaultSerializer backs the package-level convenience functions.
var defaultSerializer = New()

// marshalContent JSON-serializes a value for content-based serialization.
// A marshal failure is absorbed: it is reported on the diagnostic channel
// and the primitive rendering of the value is returned instead.
func (s *Serializer) marshalContent(name string, value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		s.warn("parameter content serialization failed", name,
			wireerrors.NewTransformError("encode", "json", err))
		return FormatPrimitive(value)
	}
	return string(data)
}

func (s *Serializer) warn(msg, param string, err error) {
	logger := s.logger
	if logger == nil {
		logger = oaswire.NopLogger{}
	}
	logger.Warn(msg, "param", param, "error", err)
}
