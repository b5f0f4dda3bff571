// Package contentcodec applies schema-level content transforms to runtime
// values: contentEncoding (base64, base64url) and embedded-media decoding
// (JSON, XML), walking a descriptor tree that mirrors the resolved schema.
//
// Import path: github.com/offscale/cdd-web-ng-sub004/contentcodec
//
// Both directions are total, best-effort functions. A value that cannot be
// transformed (a JSON marshal failure on encode, a parse or base64 failure
// on decode) is returned unchanged and the failure is reported through the
// diagnostic logger. Callers must not assume a transform succeeded.
//
//	codec := contentcodec.New()
//	wire := codec.Encode([]byte("test-content"), &contentcodec.Descriptor{
//		ContentEncoding: "base64",
//	})
//	// wire == "dGVzdC1jb250ZW50"
//
// Descriptor trees are produced by schema resolution and are acyclic by
// construction, so the recursive walk terminates without a depth guard.
package contentcodec
