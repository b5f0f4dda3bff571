// Package multipart assembles multipart/form-data and multipart/mixed
// request payloads from runtime body values and their per-field encoding
// descriptors.
//
// Import path: github.com/offscale/cdd-web-ng-sub004/multipart
//
// # Modes
//
// Each Serialize call runs a small state machine: detect mode, emit parts,
// finalize.
//
//   - Native form: when nothing about the configuration requires byte-level
//     control, the result is a [FormData] container the caller hands to its
//     HTTP framework, which supplies its own boundary.
//   - Manual object: an explicit media type, per-part headers, style hints,
//     or nested multiparts force byte-level assembly with a generated
//     boundary. Default payload media type: multipart/form-data.
//   - Manual array: array bodies are always assembled manually, since a
//     native form container cannot represent unkeyed positional parts.
//     Default payload media type: multipart/mixed; parts are anonymous.
//
// A part whose resolved content type is itself multipart recurses into the
// builder with its nested encoding map; the outer part's Content-Type is
// rewritten to carry the nested boundary.
//
// # Boundaries
//
// Boundary tokens are 128-bit random values (hex-encoded, "----" prefix).
// Before framing, assembled part payloads are scanned for an accidental
// occurrence of the token and the boundary is redrawn on a hit, so the
// delimiter is statistically and then mechanically absent from the body.
//
// # Failure model
//
// Serialize never fails. JSON serialization problems inside a part are
// absorbed, reported through the diagnostic logger, and replaced by the
// plain primitive rendering of the value.
package multipart
