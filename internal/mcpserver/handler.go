package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handle serves the streamable HTTP transport: POST carries JSON-RPC
// messages, GET opens the server stream and DELETE ends a session.
func (s *Server) Handle(c *gin.Context) {
	s.handler.ServeHTTP(c.Writer, c.Request)
}

// Register adds tool to the registry and publishes it on the MCP server.
func (s *Server) Register(tool Tool) {
	s.registry.Register(tool)
	s.mcp.AddTool(definition(tool), s.callTool(tool))
	s.l.Debugf(context.Background(), "%s: tool %s", LogPrefixRegister, tool.Name())
}

// callTool adapts a Tool to the MCP tool handler. Invalid arguments and
// failures while executing are reported in the result with isError set, so
// callers can correct the request.
func (s *Server) callTool(tool Tool) mcpsdk.ToolHandler {
	return func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		raw := req.Params.Arguments

		if err := validateArgs(tool.InputSchema(), raw); err != nil {
			var invalid *InvalidArgumentsError
			if !errors.As(err, &invalid) {
				s.l.Errorf(ctx, "%s: %s schema: %v", LogPrefixCallTool, tool.Name(), err)
				return nil, fmt.Errorf("%s: invalid tool schema", tool.Name())
			}
			return errorResult(err), nil
		}

		args, err := decodeArgs(raw)
		if err != nil {
			return errorResult(err), nil
		}

		out, err := tool.Execute(ctx, args)
		if err != nil {
			s.l.Warnf(ctx, "%s: %s: %v", LogPrefixCallTool, tool.Name(), err)
			return errorResult(err), nil
		}

		text, err := json.Marshal(out)
		if err != nil {
			return nil, fmt.Errorf("%s: encode result: %w", tool.Name(), err)
		}

		return &mcpsdk.CallToolResult{
			Content:           []mcpsdk.Content{&mcpsdk.TextContent{Text: string(text)}},
			StructuredContent: out,
		}, nil
	}
}

func errorResult(err error) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: err.Error()}},
		IsError: true,
	}
}
