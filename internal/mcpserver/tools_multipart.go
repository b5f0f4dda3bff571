package mcpserver

import (
	"context"
	"encoding/base64"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/offscale/cdd-web-ng-sub004/multipart"
)

type buildMultipartInput struct {
	Value  string `json:"value"            jsonschema:"The body value as a JSON document"`
	Config string `json:"config,omitempty" jsonschema:"The multipart configuration as a YAML or JSON document: mediaType plus encoding / prefixEncoding / itemEncoding descriptors"`
}

type formFieldOutput struct {
	Name      string `json:"name"`
	Value     string `json:"value,omitempty"`
	Filename  string `json:"filename,omitempty"`
	MediaType string `json:"media_type,omitempty"`
	// DataBase64 carries blob payload bytes, base64-encoded.
	DataBase64 string `json:"data_base64,omitempty"`
}

type buildMultipartOutput struct {
	// Mode is "form" for a native field list, "raw" for a framed payload.
	Mode        string            `json:"mode"`
	Fields      []formFieldOutput `json:"fields,omitempty"`
	Payload     string            `json:"payload,omitempty"`
	ContentType string            `json:"content_type,omitempty"`
}

func handleBuildMultipart(_ context.Context, _ *mcp.CallToolRequest, input buildMultipartInput) (*mcp.CallToolResult, buildMultipartOutput, error) {
	value, err := decodeValue(input.Value)
	if err != nil {
		return errResult(err), buildMultipartOutput{}, nil
	}
	var cfg multipart.Config
	if err := decodeInto(input.Config, &cfg); err != nil {
		return errResult(err), buildMultipartOutput{}, nil
	}

	payload := multipart.Serialize(value, cfg)
	if payload.Form != nil {
		output := buildMultipartOutput{Mode: "form"}
		for _, field := range payload.Form.Fields() {
			out := formFieldOutput{Name: field.Name, Value: field.Value}
			if field.Blob != nil {
				out.Filename = field.Blob.Filename
				out.MediaType = field.Blob.MediaType
				out.DataBase64 = base64.StdEncoding.EncodeToString(field.Blob.Data)
			}
			output.Fields = append(output.Fields, out)
		}
		return nil, output, nil
	}

	return nil, buildMultipartOutput{
		Mode:        "raw",
		Payload:     string(payload.Raw),
		ContentType: payload.Headers["Content-Type"],
	}, nil
}
