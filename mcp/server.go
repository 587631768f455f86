package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/chillmcp/chillmcp/logging"
	"github.com/chillmcp/chillmcp/tool"
)

// ProtocolVersion is the MCP protocol revision this server speaks.
const ProtocolVersion = "2024-11-05"

// maxFrameSize bounds a single request line.
const maxFrameSize = 1024 * 1024

// ServerInfo identifies the server during the initialize handshake.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ToolsCapability indicates the server supports tools.
type ToolsCapability struct {
	ListChanged bool `json:"listChanged,omitempty"`
}

// ServerCapabilities represents what the server supports.
type ServerCapabilities struct {
	Tools *ToolsCapability `json:"tools,omitempty"`
}

// InitializeResult is the result of the initialize handshake.
type InitializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ServerCapabilities `json:"capabilities"`
	ServerInfo      ServerInfo         `json:"serverInfo"`
}

// ToolSchema represents an MCP tool definition as listed to clients.
type ToolSchema struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// ContentBlock represents a piece of content in a tool result.
type ContentBlock struct {
	Type string `json:"type"` // "text"
	Text string `json:"text,omitempty"`
}

// ToolCallResult is the result of calling a tool. Tool-level failures are
// reported in-band with IsError rather than as transport errors.
type ToolCallResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

// Options holds configuration overrides passed to NewServer().
type Options struct {
	// Name and Version identify the server in the initialize handshake.
	Name    string
	Version string
	// Logger receives request/response diagnostics.
	Logger logging.Logger
}

// Server dispatches MCP requests to registered tools. Requests are
// handled concurrently (a call stuck in the penalty gate must not stall
// pings or status queries); response writes are serialized.
type Server struct {
	name    string
	version string
	tools   map[string]tool.Tool
	order   []string
	logger  logging.Logger

	writeMu  sync.Mutex
	inflight sync.WaitGroup
}

// NewServer constructs a Server over the given tools.
func NewServer(tools []tool.Tool, optFns ...func(o *Options)) *Server {
	opts := Options{
		Name:    "ChillMCP",
		Version: "1.0.0",
		Logger:  logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	s := &Server{
		name:    opts.Name,
		version: opts.Version,
		tools:   make(map[string]tool.Tool, len(tools)),
		logger:  opts.Logger,
	}
	for _, t := range tools {
		s.tools[t.Name()] = t
		s.order = append(s.order, t.Name())
	}

	return s
}

// Serve reads line-delimited JSON-RPC requests from r and writes
// responses to w until r is exhausted or ctx is cancelled. In-flight
// calls (including one waiting out the penalty gate) are abandoned on
// cancellation; the gauge store's lock is never held across a wait so
// abandonment cannot poison state.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameSize)

	s.logger.Info("mcp.serve.start", "server", s.name, "tools", len(s.order))

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		req, err := UnmarshalRequest(line)
		if err != nil {
			var rpcErr *RPCError
			if errors.As(err, &rpcErr) {
				s.write(w, NewErrorResponse(nil, rpcErr.Code, rpcErr.Message, rpcErr.Data))
			}
			continue
		}

		s.inflight.Add(1)
		go func() {
			defer s.inflight.Done()
			s.dispatch(ctx, w, req)
		}()
	}

	// Input is exhausted; let in-flight calls finish writing before the
	// transport goes away.
	s.inflight.Wait()

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("mcp: transport read failed: %w", err)
	}

	s.logger.Info("mcp.serve.stop", "server", s.name)

	return nil
}

func (s *Server) dispatch(ctx context.Context, w io.Writer, req *Request) {
	s.logger.Debug("mcp.request", "method", req.Method, "id", req.ID)

	switch req.Method {
	case "initialize":
		s.write(w, NewResponse(req.ID, InitializeResult{
			ProtocolVersion: ProtocolVersion,
			Capabilities:    ServerCapabilities{Tools: &ToolsCapability{}},
			ServerInfo:      ServerInfo{Name: s.name, Version: s.version},
		}))
	case "notifications/initialized":
		// Notification; no reply.
	case "ping":
		s.write(w, NewResponse(req.ID, map[string]any{}))
	case "tools/list":
		s.write(w, NewResponse(req.ID, map[string]any{"tools": s.listTools()}))
	case "tools/call":
		s.handleToolCall(ctx, w, req)
	default:
		if req.IsNotification() {
			return
		}
		s.write(w, NewErrorResponse(req.ID, MethodNotFound, fmt.Sprintf("method not found: %s", req.Method), nil))
	}
}

func (s *Server) listTools() []ToolSchema {
	schemas := make([]ToolSchema, 0, len(s.order))
	for _, name := range s.order {
		t := s.tools[name]
		schemas = append(schemas, ToolSchema{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.Parameters(),
		})
	}
	return schemas
}

func (s *Server) handleToolCall(ctx context.Context, w io.Writer, req *Request) {
	name, _ := req.Params["name"].(string)
	if name == "" {
		s.write(w, NewErrorResponse(req.ID, InvalidParams, "tools/call requires a tool name", nil))
		return
	}

	t, ok := s.tools[name]
	if !ok {
		s.write(w, NewErrorResponse(req.ID, InvalidParams, fmt.Sprintf("unknown tool: %s", name), nil))
		return
	}

	args, _ := req.Params["arguments"].(map[string]any)
	if args == nil {
		args = map[string]any{}
	}

	text, err := t.Call(ctx, args)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Shutdown abandoned the call; the client is gone anyway.
			return
		}

		s.logger.Error("mcp.tool_call.error", "tool", name, "error", err.Error())
		s.write(w, NewResponse(req.ID, ToolCallResult{
			Content: []ContentBlock{{Type: "text", Text: err.Error()}},
			IsError: true,
		}))

		return
	}

	s.write(w, NewResponse(req.ID, ToolCallResult{
		Content: []ContentBlock{{Type: "text", Text: text}},
	}))
}

// write serializes one response frame onto the shared transport.
func (s *Server) write(w io.Writer, resp *Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("mcp.write.marshal_failed", "error", err.Error())
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if _, err := w.Write(append(data, '\n')); err != nil {
		s.logger.Error("mcp.write.failed", "error", err.Error())
	}
}
