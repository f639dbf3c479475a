// Package mcp implements the stdio JSON-RPC 2.0 server surface of the
// morphology engine. Messages are newline-delimited JSON objects; the
// protocol follows the 2024-11-05 MCP revision: initialize handshake,
// tools/list, tools/call, ping.
package mcp

import (
	"encoding/json"

	"anthrobot/internal/tools"
)

// protocolVersion is the MCP revision this server speaks.
const protocolVersion = "2024-11-05"

// JSON-RPC 2.0 error codes.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

// request is one incoming JSON-RPC message. A nil ID marks a notification.
type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// response is one outgoing JSON-RPC message.
type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// initializeResult answers the initialize handshake.
type initializeResult struct {
	ProtocolVersion string         `json:"protocolVersion"`
	Capabilities    capabilities   `json:"capabilities"`
	ServerInfo      serverInfo     `json:"serverInfo"`
}

type capabilities struct {
	Tools toolCapability `json:"tools"`
}

type toolCapability struct {
	ListChanged bool `json:"listChanged"`
}

type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// toolDescriptor is one entry of the tools/list result.
type toolDescriptor struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema inputSchema `json:"inputSchema"`
}

// inputSchema renders a tool's argument schema as a JSON Schema object.
type inputSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]tools.Property `json:"properties"`
	Required   []string                  `json:"required,omitempty"`
}

func describeTool(t *tools.Tool) toolDescriptor {
	props := t.Schema.Properties
	if props == nil {
		props = map[string]tools.Property{}
	}
	return toolDescriptor{
		Name:        t.Name,
		Description: t.Description,
		InputSchema: inputSchema{
			Type:       "object",
			Properties: props,
			Required:   t.Schema.Required,
		},
	}
}

// callParams are the parameters of a tools/call request.
type callParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// callResult is the tools/call result: text content blocks plus an error
// flag. Domain errors travel here rather than as protocol errors.
type callResult struct {
	Content []contentBlock `json:"content"`
	IsError bool           `json:"isError"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func textResult(text string, isErr bool) callResult {
	return callResult{
		Content: []contentBlock{{Type: "text", Text: text}},
		IsError: isErr,
	}
}
