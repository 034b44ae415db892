package mcp

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vanta/internal/application"
)

// Session owns the workspace the tools act on. The server may run handlers
// concurrently while the workspace containers are not safe for concurrent
// use, so every handler holds the session lock.
type Session struct {
	mu     sync.Mutex
	ws     *application.Workspace
	logger *log.Logger
}

// NewSession wraps a workspace for tool handlers
func NewSession(ws *application.Workspace, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{ws: ws, logger: logger}
}

// handler adapts a workspace function into a locked tool handler
func (s *Session) handler(name string, fn func(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error)) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.logger.Debug("tool call", "tool", name)
		res, err := fn(ctx, s.ws, req)
		if res != nil && res.IsError {
			s.logger.Warn("tool failed", "tool", name)
		}
		return res, err
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}
