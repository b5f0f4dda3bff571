package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/offscale/cdd-web-ng-sub004/contentcodec"
)

type contentTransformInput struct {
	Value      string `json:"value"                jsonschema:"The value as a JSON document"`
	Descriptor string `json:"descriptor,omitempty" jsonschema:"The content descriptor tree as a YAML or JSON document: encode, decode, contentEncoding, properties, items"`
}

type contentTransformOutput struct {
	// Result is the transformed value as a JSON document. Byte payloads
	// appear base64-encoded per standard JSON marshaling.
	Result string `json:"result"`
}

func handleContentEncode(_ context.Context, _ *mcp.CallToolRequest, input contentTransformInput) (*mcp.CallToolResult, contentTransformOutput, error) {
	value, d, errRes := decodeContentInput(input)
	if errRes != nil {
		return errRes, contentTransformOutput{}, nil
	}
	result, err := encodeResult(contentcodec.Encode(value, d))
	if err != nil {
		return errResult(err), contentTransformOutput{}, nil
	}
	return nil, contentTransformOutput{Result: result}, nil
}

func handleContentDecode(_ context.Context, _ *mcp.CallToolRequest, input contentTransformInput) (*mcp.CallToolResult, contentTransformOutput, error) {
	value, d, errRes := decodeContentInput(input)
	if errRes != nil {
		return errRes, contentTransformOutput{}, nil
	}
	result, err := encodeResult(contentcodec.Decode(value, d))
	if err != nil {
		return errResult(err), contentTransformOutput{}, nil
	}
	return nil, contentTransformOutput{Result: result}, nil
}

func decodeContentInput(input contentTransformInput) (any, *contentcodec.Descriptor, *mcp.CallToolResult) {
	value, err := decodeValue(input.Value)
	if err != nil {
		return nil, nil, errResult(err)
	}
	d := &contentcodec.Descriptor{}
	if err := decodeInto(input.Descriptor, d); err != nil {
		return nil, nil, errResult(err)
	}
	return value, d, nil
}
