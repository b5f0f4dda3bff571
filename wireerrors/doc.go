// Package wireerrors provides structured error types for the serialization
// engine.
//
// Import path: github.com/offscale/cdd-web-ng-sub004/wireerrors
//
// This package enables programmatic error handling via [errors.Is] and
// [errors.As]. The engine itself has no fatal error surface: every core
// transform is total and degrades gracefully. The types here cover the two
// places errors still exist:
//
//   - [ConfigError]: invalid descriptor or configuration input at the
//     CLI/MCP boundary, before a value ever reaches the engine
//   - [TransformError]: a transform failure (JSON marshal/parse, XML parse,
//     base64 decode) that the engine absorbed; it is reported through the
//     diagnostic channel, never returned from an engine call
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel for use with errors.Is():
//
//   - [ErrConfig]: matches any [ConfigError]
//   - [ErrTransform]: matches any [TransformError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	cfg, err := loadDescriptor(path)
//	if errors.Is(err, wireerrors.ErrConfig) {
//	    // Invalid descriptor input
//	}
//
// Extract details with errors.As():
//
//	var cfgErr *wireerrors.ConfigError
//	if errors.As(err, &cfgErr) {
//	    fmt.Println(cfgErr.Field, cfgErr.Reason)
//	}
package wireerrors
