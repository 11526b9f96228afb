package mcp

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/redfive410/dinnercaster3-aws/pkg/lambda"
)

// Server adapts the third-party MCP server to the shim's Dispatcher interface.
// Protocol semantics (request parsing, tool lookup, result serialization) are
// owned entirely by the underlying library.
type Server struct {
	srv *server.MCPServer
}

// NewServer creates an MCP server with the given identity
func NewServer(name, version string) *Server {
	srv := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	return &Server{srv: srv}
}

// RegisterTool exposes a zero-argument tool under the given name
func (s *Server) RegisterTool(name, description string, fn func() string) {
	tool := mcp.NewTool(name,
		mcp.WithDescription(description),
	)

	s.srv.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(fn()), nil
	})
}

// Handle routes one protocol message and wraps the reply as a transport
// response. Notifications produce no reply and map to 202 with an empty body.
func (s *Server) Handle(ctx context.Context, payload []byte) (*lambda.Response, error) {
	msg := s.srv.HandleMessage(ctx, json.RawMessage(payload))
	if msg == nil {
		return &lambda.Response{
			StatusCode: http.StatusAccepted,
			Headers:    map[string]string{"Content-Type": "application/json"},
		}, nil
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	return &lambda.Response{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}, nil
}
