// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the oaswire serialization engine as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	oaswire "github.com/offscale/cdd-web-ng-sub004"
)

const serverInstructions = `oaswire MCP server — serializes runtime values into their OpenAPI wire representations.

Tools:
- serialize_param — style/explode/allowReserved parameter serialization for path, query, header, and cookie locations
- build_multipart — multipart/form-data and multipart/mixed payload assembly, including nested multiparts
- content_encode — schema-level content transforms toward the wire (JSON stringification, base64/base64url)
- content_decode — the inverse transforms (base64 decoding, embedded JSON/XML parsing)

Runtime values are passed as JSON documents inside string fields; descriptor and configuration documents accept YAML or JSON syntax. The engine is deliberately total: unsupported style combinations degrade to the nearest defined behavior, and transform failures return the value unchanged rather than erroring.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oaswire", Version: oaswire.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "serialize_param",
		Description: "Serialize a runtime value into its OpenAPI parameter wire form. Specify name, location (path, query, header, cookie) and optionally style, explode, allow_reserved, and content_type. Query parameters return (key, value) pairs plus the encoded query string; other locations return a single serialized string. A JSON content_type switches to content-based serialization and ignores style.",
	}, handleSerializeParam)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_multipart",
		Description: "Assemble a multipart payload from a body value and an optional encoding configuration. Object bodies without byte-level requirements return a native field list; configured objects and all array bodies return the framed payload with its boundary-carrying Content-Type header. Fields with a multipart/* content type recurse into nested multiparts.",
	}, handleBuildMultipart)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "content_encode",
		Description: "Apply schema-level content transforms toward the wire: JSON stringification where the descriptor sets encode, then base64/base64url conversion per contentEncoding, recursing through properties and items. Binary results are returned base64-encoded by JSON marshaling. The transform is best-effort and never fails.",
	}, handleContentEncode)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "content_decode",
		Description: "Reverse schema-level content transforms: base64/base64url text back to bytes, then embedded JSON or XML parsing where the descriptor sets decode, recursing through properties and items. Parse failures are non-fatal; the raw string is returned unchanged.",
	}, handleContentDecode)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
