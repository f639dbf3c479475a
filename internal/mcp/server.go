package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"anthrobot/internal/logging"
	"anthrobot/internal/tools"
)

// maxLineBytes bounds one JSON-RPC message. Tool arguments are small; the
// limit guards against a runaway peer.
const maxLineBytes = 4 * 1024 * 1024

// Recorder receives a record of every tools/call dispatch. Implementations
// must be safe for sequential calls from the serve loop.
type Recorder interface {
	RecordCall(ctx context.Context, tool string, args map[string]any, durationMs int64, callErr error) error
}

// Server dispatches JSON-RPC requests against a tool registry.
type Server struct {
	registry *tools.Registry
	name     string
	version  string
	recorder Recorder

	initialized bool
}

// NewServer creates a server over an already-populated registry.
func NewServer(registry *tools.Registry, name, version string) *Server {
	return &Server{registry: registry, name: name, version: version}
}

// SetRecorder attaches an invocation recorder. Must be called before Serve.
func (s *Server) SetRecorder(r Recorder) { s.recorder = r }

// Serve reads newline-delimited JSON-RPC messages from in and writes
// responses to out until in closes or ctx is cancelled. Notifications get
// no response; malformed JSON gets a -32700 error with a null id.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	log := logging.Get(logging.CategoryServer)
	log.Infof("serving %s %s over stdio (%d tools)", s.name, s.version, s.registry.Count())

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			log.Warnf("unparseable message: %v", err)
			s.write(out, response{
				JSONRPC: "2.0",
				ID:      json.RawMessage("null"),
				Error:   &rpcError{Code: codeParseError, Message: "parse error"},
			})
			continue
		}

		if req.ID == nil {
			s.handleNotification(req)
			continue
		}

		s.write(out, s.handleRequest(ctx, req))
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read loop failed: %w", err)
	}
	log.Info("input closed, shutting down")
	return nil
}

func (s *Server) handleNotification(req request) {
	log := logging.Get(logging.CategoryServer)
	switch req.Method {
	case "notifications/initialized":
		s.initialized = true
		log.Debug("client initialized")
	default:
		log.Debugf("ignoring notification %s", req.Method)
	}
}

func (s *Server) handleRequest(ctx context.Context, req request) response {
	resp := response{JSONRPC: "2.0", ID: req.ID}

	switch req.Method {
	case "initialize":
		resp.Result = initializeResult{
			ProtocolVersion: protocolVersion,
			Capabilities:    capabilities{Tools: toolCapability{}},
			ServerInfo:      serverInfo{Name: s.name, Version: s.version},
		}

	case "tools/list":
		all := s.registry.All()
		descriptors := make([]toolDescriptor, 0, len(all))
		for _, t := range all {
			descriptors = append(descriptors, describeTool(t))
		}
		resp.Result = map[string]any{"tools": descriptors}

	case "tools/call":
		var params callParams
		if err := json.Unmarshal(req.Params, &params); err != nil || params.Name == "" {
			resp.Error = &rpcError{Code: codeInvalidParams, Message: "tools/call requires a tool name"}
			return resp
		}
		resp.Result, resp.Error = s.callTool(ctx, params)

	case "ping":
		// struct{} survives omitempty, so the result member stays present.
		resp.Result = struct{}{}

	default:
		resp.Error = &rpcError{
			Code:    codeMethodNotFound,
			Message: fmt.Sprintf("method not found: %s", req.Method),
		}
	}

	return resp
}

// callTool dispatches one tools/call. An unknown tool is a protocol error;
// a domain error from the engine becomes an isError result so the client
// sees the explanation as content.
func (s *Server) callTool(ctx context.Context, params callParams) (any, *rpcError) {
	tool := s.registry.Get(params.Name)
	if tool == nil {
		return nil, &rpcError{
			Code:    codeInvalidParams,
			Message: fmt.Sprintf("unknown tool: %s", params.Name),
		}
	}

	args := params.Arguments
	if args == nil {
		args = map[string]any{}
	}

	start := time.Now()
	result, err := s.registry.ExecuteTool(ctx, tool, args)
	s.record(ctx, params.Name, args, time.Since(start).Milliseconds(), err)

	if err != nil {
		return textResult(err.Error(), true), nil
	}
	return textResult(result.Output, false), nil
}

func (s *Server) record(ctx context.Context, tool string, args map[string]any, durationMs int64, callErr error) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordCall(ctx, tool, args, durationMs, callErr); err != nil {
		logging.Get(logging.CategoryStore).Warnf("failed to record call %s: %v", tool, err)
	}
}

func (s *Server) write(out io.Writer, resp response) {
	data, err := json.Marshal(resp)
	if err != nil {
		logging.Get(logging.CategoryServer).Errorf("failed to marshal response: %v", err)
		return
	}
	if _, err := out.Write(append(data, '\n')); err != nil {
		logging.Get(logging.CategoryServer).Errorf("failed to write response: %v", err)
	}
}
