// Package oaswire implements the runtime value-serialization engine used by
// generated OpenAPI clients.
//
// Given already-resolved serialization descriptors and runtime values, the
// engine produces the exact wire representations that a generated client
// attaches to an outgoing HTTP request. It never reads or resolves an
// OpenAPI document itself, performs no network I/O, and validates nothing;
// descriptor resolution is the job of an upstream collaborator.
//
// # Overview
//
// The module consists of three engine packages plus shared vocabulary:
//
//   - serializer: path/query/header/cookie parameter serialization per the
//     OpenAPI style/explode/allowReserved rules, including the
//     reserved-character percent-encoder and the primitive formatter
//   - multipart: multipart/form-data and multipart/mixed payload assembly,
//     including recursive nested multiparts
//   - contentcodec: schema-level content transforms (contentEncoding
//     base64/base64url, contentMediaType JSON/XML auto-(en|de)coding)
//   - wireerrors: structured error types for descriptor input handling
//
// The root package holds the pieces the engine packages share: the Blob
// binary value type, the Logger diagnostic interface, and build details.
//
// # Quick Start
//
// Serialize a query parameter:
//
//	import "github.com/offscale/cdd-web-ng-sub004/serializer"
//
//	var params serializer.QueryParams
//	serializer.SerializeQuery(&params, serializer.Descriptor{
//		Name:     "tags",
//		Location: serializer.LocationQuery,
//	}, []any{"dog", "cat"})
//	fmt.Println(params.Encode()) // tags=dog&tags=cat
//
// Build a multipart body:
//
//	import "github.com/offscale/cdd-web-ng-sub004/multipart"
//
//	payload := multipart.Serialize(body, multipart.Config{
//		MediaType: "multipart/form-data",
//	})
//	req.Header.Set("Content-Type", payload.Headers["Content-Type"])
//
// # Failure Model
//
// The engine has no fatal error surface. Malformed-but-tolerable input
// (unsupported style combinations, unknown content encodings) degrades to
// the nearest defined behavior; transform failures (JSON marshal/parse, XML
// parse) are absorbed, reported through the [Logger] diagnostic channel,
// and the original value is passed through. A generated client must not
// crash on a slightly non-conformant server-declared encoding.
//
// # Command-Line Interface
//
// In addition to the library packages, the module provides a command-line
// interface:
//
//	# Serialize a parameter value
//	oaswire serialize --name id --in path '[1,2,3]'
//
//	# Assemble a multipart body
//	oaswire multipart --config '{"mediaType":"multipart/form-data"}' '{"name":"rex"}'
//
//	# Apply content transforms
//	oaswire encode --descriptor '{"contentEncoding":"base64"}' '"test-content"'
//
// Install the CLI:
//
//	go install github.com/offscale/cdd-web-ng-sub004/cmd/oaswire@latest
package oaswire
