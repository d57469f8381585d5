package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/everydev1618/arcane-mcp/tools"
)

// Default server identity.
const (
	DefaultServerName    = "Arcane Docker MCP Server"
	DefaultServerVersion = "dev"
)

// Server answers MCP requests by dispatching tool calls to a tool registry.
// It holds no per-session state and is safe for concurrent use.
type Server struct {
	tools  *tools.Tools
	info   Implementation
	logger zerolog.Logger
}

// ServerOption configures the Server.
type ServerOption func(*Server)

// WithServerInfo sets the name and version reported by initialize.
func WithServerInfo(name, version string) ServerOption {
	return func(s *Server) {
		s.info = Implementation{Name: name, Version: version}
	}
}

// WithLogger sets the server logger.
func WithLogger(l zerolog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = l
	}
}

// NewServer creates a server exposing t.
func NewServer(t *tools.Tools, opts ...ServerOption) *Server {
	s := &Server{
		tools:  t,
		info:   Implementation{Name: DefaultServerName, Version: DefaultServerVersion},
		logger: log.Logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HandleMessage decodes one raw JSON-RPC message and handles it.
// It returns nil for notifications.
func (s *Server) HandleMessage(ctx context.Context, raw []byte) *JSONRPCResponse {
	var req JSONRPCRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return errorResponse(nil, ErrCodeParse, "Parse error: "+err.Error())
	}
	return s.Handle(ctx, &req)
}

// Handle handles one decoded request. It returns nil for notifications.
// A panic while handling the request is answered with an internal error.
func (s *Server) Handle(ctx context.Context, req *JSONRPCRequest) (resp *JSONRPCResponse) {
	if req.JSONRPC != "2.0" || req.Method == "" {
		if req.IsNotification() {
			return nil
		}
		return errorResponse(req.ID, ErrCodeInvalidRequest, "Invalid request")
	}

	if req.IsNotification() {
		s.logger.Debug().Str("method", req.Method).Msg("mcp notification")
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Str("method", req.Method).Msg("mcp request panicked")
			resp = errorResponse(req.ID, ErrCodeInternal, fmt.Sprintf("Internal error: %v", r))
		}
	}()

	result, rpcErr := s.dispatch(ctx, req)
	if rpcErr != nil {
		return &JSONRPCResponse{JSONRPC: "2.0", ID: req.ID, Error: rpcErr}
	}
	return &JSONRPCResponse{JSONRPC: "2.0", ID: req.ID, Result: result}
}

func (s *Server) dispatch(ctx context.Context, req *JSONRPCRequest) (any, *JSONRPCError) {
	switch req.Method {
	case "initialize":
		return s.initialize(req.Params)
	case "ping":
		return struct{}{}, nil
	case "tools/list":
		return s.listTools(), nil
	case "tools/call":
		return s.callTool(ctx, req.Params)
	default:
		return nil, &JSONRPCError{Code: ErrCodeMethodNotFound, Message: "Method not found: " + req.Method}
	}
}

func (s *Server) initialize(raw json.RawMessage) (any, *JSONRPCError) {
	var params InitializeParams
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			return nil, &JSONRPCError{Code: ErrCodeInvalidParams, Message: "Invalid params: " + err.Error()}
		}
	}

	s.logger.Info().
		Str("client", params.ClientInfo.Name).
		Str("client_version", params.ClientInfo.Version).
		Str("protocol", params.ProtocolVersion).
		Msg("mcp initialize")

	return InitializeResult{
		ProtocolVersion: ProtocolVersion,
		ServerInfo:      s.info,
		Capabilities:    Capabilities{Tools: &ToolsCapability{}},
	}, nil
}

func (s *Server) listTools() ToolsListResult {
	schemas := s.tools.Schema()
	out := ToolsListResult{Tools: make([]Tool, 0, len(schemas))}
	for _, schema := range schemas {
		out.Tools = append(out.Tools, Tool{
			Name:        schema.Name,
			Description: schema.Description,
			InputSchema: schema.InputSchema,
		})
	}
	return out
}

func (s *Server) callTool(ctx context.Context, raw json.RawMessage) (any, *JSONRPCError) {
	var params ToolCallParams
	if len(raw) == 0 {
		return nil, &JSONRPCError{Code: ErrCodeInvalidParams, Message: "Invalid params: missing tool name"}
	}
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, &JSONRPCError{Code: ErrCodeInvalidParams, Message: "Invalid params: " + err.Error()}
	}

	if !s.tools.Has(params.Name) {
		return nil, &JSONRPCError{Code: ErrCodeInvalidParams, Message: fmt.Sprintf("Tool %s not found", params.Name)}
	}

	text, err := s.tools.Execute(ctx, params.Name, params.Arguments)

	var argsErr *tools.ArgsError
	if errors.As(err, &argsErr) {
		return nil, &JSONRPCError{
			Code:    ErrCodeInvalidParams,
			Message: fmt.Sprintf("Invalid arguments for tool %s: %s", params.Name, argsErr.Err.Error()),
		}
	}

	res := tools.Outcome(text, err)
	return ToolCallResult{
		Content: []ContentBlock{{Type: "text", Text: res.Text}},
		IsError: res.IsError,
	}, nil
}

func errorResponse(id json.RawMessage, code int, msg string) *JSONRPCResponse {
	return &JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &JSONRPCError{Code: code, Message: msg},
	}
}
