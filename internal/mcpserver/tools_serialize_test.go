package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeParamTool_Query(t *testing.T) {
	input := serializeParamInput{
		Name:     "id",
		Location: "query",
		Value:    `[3, 4, 5]`,
	}
	result, output, err := handleSerializeParam(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "query", output.Location)
	assert.Equal(t, []queryPair{{"id", "3"}, {"id", "4"}, {"id", "5"}}, output.Pairs)
	assert.Equal(t, "id=3&id=4&id=5", output.Query)
	assert.Empty(t, output.Serialized)
}

func TestSerializeParamTool_QueryDeepObject(t *testing.T) {
	explode := true
	input := serializeParamInput{
		Name:     "q",
		Location: "query",
		Style:    "deepObject",
		Explode:  &explode,
		Value:    `{"name": "rex", "age": 3}`,
	}
	_, output, err := handleSerializeParam(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, []queryPair{{"q[age]", "3"}, {"q[name]", "rex"}}, output.Pairs)
}

func TestSerializeParamTool_Path(t *testing.T) {
	input := serializeParamInput{
		Name:     "id",
		Location: "path",
		Value:    `[1, 2, 3]`,
	}
	_, output, err := handleSerializeParam(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "1,2,3", output.Serialized)
	assert.Empty(t, output.Pairs)
}

func TestSerializeParamTool_Header(t *testing.T) {
	explode := true
	input := serializeParamInput{
		Name:     "X-Filter",
		Location: "header",
		Explode:  &explode,
		Value:    `{"role": "admin"}`,
	}
	_, output, err := handleSerializeParam(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "role=admin", output.Serialized)
}

func TestSerializeParamTool_Cookie(t *testing.T) {
	explode := true
	input := serializeParamInput{
		Name:     "sid",
		Location: "cookie",
		Explode:  &explode,
		Value:    `{"a": 1, "b": 2}`,
	}
	_, output, err := handleSerializeParam(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "a=1; b=2", output.Serialized)
}

func TestSerializeParamTool_Errors(t *testing.T) {
	t.Run("unknown location", func(t *testing.T) {
		input := serializeParamInput{Name: "id", Location: "body", Value: `1`}
		result, _, err := handleSerializeParam(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})

	t.Run("malformed value document", func(t *testing.T) {
		input := serializeParamInput{Name: "id", Location: "query", Value: `{broken`}
		result, _, err := handleSerializeParam(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})
}
