package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"anthrobot/internal/taxonomy"
	"anthrobot/internal/tools"
	"anthrobot/internal/tools/morpho"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	r := tools.NewRegistry()
	morpho.NewSet(taxonomy.MustLoad()).Register(r)
	return NewServer(r, "anthrobot-test", "0.0.1")
}

// roundTrip feeds newline-delimited requests through Serve and decodes one
// response per non-notification line.
func roundTrip(t *testing.T, s *Server, lines ...string) []response {
	t.Helper()

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	require.NoError(t, s.Serve(context.Background(), in, &out))

	var responses []response
	scanner := bufio.NewScanner(&out)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		var resp response
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &resp))
		responses = append(responses, resp)
	}
	require.NoError(t, scanner.Err())
	return responses
}

func resultOf(t *testing.T, resp response, v any) {
	t.Helper()
	require.Nil(t, resp.Error, "unexpected protocol error: %+v", resp.Error)
	data, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func TestInitializeHandshake(t *testing.T) {
	s := newTestServer(t)

	resps := roundTrip(t, s,
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05"}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
	)
	require.Len(t, resps, 1, "notification must not get a response")

	var init initializeResult
	resultOf(t, resps[0], &init)
	assert.Equal(t, protocolVersion, init.ProtocolVersion)
	assert.Equal(t, "anthrobot-test", init.ServerInfo.Name)
	assert.True(t, s.initialized)
}

func TestToolsList(t *testing.T) {
	s := newTestServer(t)

	resps := roundTrip(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	require.Len(t, resps, 1)

	var result struct {
		Tools []toolDescriptor `json:"tools"`
	}
	resultOf(t, resps[0], &result)
	assert.Len(t, result.Tools, 15)

	for _, d := range result.Tools {
		assert.NotEmpty(t, d.Name)
		assert.Equal(t, "object", d.InputSchema.Type)
		assert.NotNil(t, d.InputSchema.Properties)
	}
}

func TestToolsCallSuccess(t *testing.T) {
	s := newTestServer(t)

	resps := roundTrip(t, s,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"calculate_size_effects","arguments":{"size_micrometers":150}}}`)
	require.Len(t, resps, 1)

	var result callResult
	resultOf(t, resps[0], &result)
	assert.False(t, result.IsError)
	require.Len(t, result.Content, 1)
	assert.Equal(t, "text", result.Content[0].Type)
	assert.Contains(t, result.Content[0].Text, `"size_category": "medium"`)
}

func TestToolsCallDomainErrorIsResult(t *testing.T) {
	s := newTestServer(t)

	resps := roundTrip(t, s,
		`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"calculate_size_effects","arguments":{"size_micrometers":9999}}}`)
	require.Len(t, resps, 1)

	var result callResult
	resultOf(t, resps[0], &result)
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	assert.Contains(t, result.Content[0].Text, "outside valid range")
}

func TestToolsCallUnknownTool(t *testing.T) {
	s := newTestServer(t)

	resps := roundTrip(t, s,
		`{"jsonrpc":"2.0","id":5,"method":"tools/call","params":{"name":"no_such_tool"}}`)
	require.Len(t, resps, 1)
	require.NotNil(t, resps[0].Error)
	assert.Equal(t, codeInvalidParams, resps[0].Error.Code)
}

func TestToolsCallMissingName(t *testing.T) {
	s := newTestServer(t)

	resps := roundTrip(t, s,
		`{"jsonrpc":"2.0","id":6,"method":"tools/call","params":{}}`)
	require.Len(t, resps, 1)
	require.NotNil(t, resps[0].Error)
	assert.Equal(t, codeInvalidParams, resps[0].Error.Code)
}

func TestUnknownMethod(t *testing.T) {
	s := newTestServer(t)

	resps := roundTrip(t, s, `{"jsonrpc":"2.0","id":7,"method":"resources/list"}`)
	require.Len(t, resps, 1)
	require.NotNil(t, resps[0].Error)
	assert.Equal(t, codeMethodNotFound, resps[0].Error.Code)
}

func TestParseError(t *testing.T) {
	s := newTestServer(t)

	resps := roundTrip(t, s, `this is not json`)
	require.Len(t, resps, 1)
	require.NotNil(t, resps[0].Error)
	assert.Equal(t, codeParseError, resps[0].Error.Code)
	assert.Equal(t, json.RawMessage("null"), resps[0].ID)
}

func TestPing(t *testing.T) {
	s := newTestServer(t)

	resps := roundTrip(t, s, `{"jsonrpc":"2.0","id":8,"method":"ping"}`)
	require.Len(t, resps, 1)
	assert.Nil(t, resps[0].Error)
}

func TestEmptyLinesAreSkipped(t *testing.T) {
	s := newTestServer(t)

	resps := roundTrip(t, s, "", `{"jsonrpc":"2.0","id":9,"method":"ping"}`, "")
	assert.Len(t, resps, 1)
}

type recordingStub struct {
	calls []string
	errs  []error
}

func (r *recordingStub) RecordCall(ctx context.Context, tool string, args map[string]any, durationMs int64, callErr error) error {
	r.calls = append(r.calls, tool)
	r.errs = append(r.errs, callErr)
	return nil
}

func TestRecorderSeesEveryCall(t *testing.T) {
	s := newTestServer(t)
	stub := &recordingStub{}
	s.SetRecorder(stub)

	roundTrip(t, s,
		`{"jsonrpc":"2.0","id":10,"method":"tools/call","params":{"name":"calculate_size_effects","arguments":{"size_micrometers":150}}}`,
		`{"jsonrpc":"2.0","id":11,"method":"tools/call","params":{"name":"calculate_size_effects","arguments":{"size_micrometers":9999}}}`,
	)

	require.Len(t, stub.calls, 2)
	assert.Equal(t, "calculate_size_effects", stub.calls[0])
	assert.NoError(t, stub.errs[0])
	assert.Error(t, stub.errs[1])
}
