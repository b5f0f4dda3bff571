package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/offscale/cdd-web-ng-sub004/serializer"
)

type serializeParamInput struct {
	Name          string `json:"name"                     jsonschema:"Parameter name as it appears on the wire"`
	Location      string `json:"location"                 jsonschema:"Parameter location: path, query, header, or cookie"`
	Style         string `json:"style,omitempty"          jsonschema:"Serialization style; empty selects the per-location default"`
	Explode       *bool  `json:"explode,omitempty"        jsonschema:"Explode composite values; absent selects the per-location default"`
	AllowReserved bool   `json:"allow_reserved,omitempty" jsonschema:"Keep RFC 3986 reserved characters unescaped"`
	ContentType   string `json:"content_type,omitempty"   jsonschema:"Media type for content-based serialization; JSON types bypass style rules"`
	Value         string `json:"value"                    jsonschema:"The runtime value as a JSON document"`
}

type queryPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type serializeParamOutput struct {
	Location   string      `json:"location"`
	Serialized string      `json:"serialized,omitempty"`
	Pairs      []queryPair `json:"pairs,omitempty"`
	Query      string      `json:"query,omitempty"`
}

func handleSerializeParam(_ context.Context, _ *mcp.CallToolRequest, input serializeParamInput) (*mcp.CallToolResult, serializeParamOutput, error) {
	d := serializer.Descriptor{
		Name:          input.Name,
		Location:      serializer.Location(input.Location),
		Style:         serializer.Style(input.Style),
		Explode:       input.Explode,
		AllowReserved: input.AllowReserved,
		ContentType:   input.ContentType,
	}
	if err := d.Validate(); err != nil {
		return errResult(err), serializeParamOutput{}, nil
	}

	value, err := decodeValue(input.Value)
	if err != nil {
		return errResult(err), serializeParamOutput{}, nil
	}

	output := serializeParamOutput{Location: string(d.Location)}
	resolved := d.WithDefaults()
	switch d.Location {
	case serializer.LocationQuery:
		var params serializer.QueryParams
		serializer.SerializeQuery(&params, d, value)
		for _, pair := range params {
			output.Pairs = append(output.Pairs, queryPair{Key: pair.Key, Value: pair.Value})
		}
		output.Query = params.Encode()
	case serializer.LocationPath:
		output.Serialized = serializer.SerializePath(
			d.Name, value, resolved.Style, resolved.Exploded(), d.AllowReserved, d.JSONContent())
	case serializer.LocationHeader:
		output.Serialized = serializer.SerializeHeader(
			d.Name, value, resolved.Exploded(), d.JSONContent())
	case serializer.LocationCookie:
		output.Serialized = serializer.SerializeCookie(
			d.Name, value, resolved.Style, resolved.Exploded(), d.JSONContent())
	}

	return nil, output, nil
}
