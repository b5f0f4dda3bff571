// Package serializer converts runtime parameter values into their OpenAPI
// wire representations.
//
// Import path: github.com/offscale/cdd-web-ng-sub004/serializer
//
// The package implements the RFC 6570-flavored style/explode/allowReserved
// serialization rules for the four parameter locations. Each location has
// default styles:
//
// | Location | Default Style | Default Explode |
// |----------|---------------|-----------------|
// | path     | simple        | false           |
// | query    | form          | true            |
// | header   | simple        | false           |
// | cookie   | form          | false           |
//
// A descriptor with a JSON ContentType short-circuits all style logic: the
// value is JSON-serialized into a single wire entry (content-based
// serialization).
//
// # Permissive behavior
//
// No function in this package returns an error. Unsupported style/explode
// combinations degrade to the nearest defined behavior (the default form
// handling), and JSON serialization failures fall back to plain primitive
// formatting after a diagnostic warning. A generated client must keep
// building requests even when an upstream descriptor is slightly
// non-conformant.
//
// # Determinism
//
// Composite (map) values serialize their keys in lexical order. Go maps are
// unordered; sorted keys are the deterministic substitute for the insertion
// order a dynamic-language client would preserve.
package serializer
