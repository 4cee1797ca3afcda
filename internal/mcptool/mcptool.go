// Package mcptool exposes the token classifier as an MCP tool so editors and
// agents can call it over stdio without going through HTTP.
package mcptool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gonkalabs/bfhl-go/internal/api"
	"github.com/gonkalabs/bfhl-go/internal/config"
)

// ToolName is the name the classifier is registered under.
const ToolName = "classify_tokens"

// NewServer builds an MCP server with the classify_tokens tool registered.
func NewServer(id config.Identity, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"bfhl",
		version,
		server.WithLogging(),
		server.WithRecovery(),
	)

	tool := mcp.NewTool(ToolName,
		mcp.WithDescription("Classify string tokens into odd numbers, even numbers, alphabets and special characters; "+
			"returns the sum of numeric values and the reversed alternating-case concat string."),
		mcp.WithArray("data",
			mcp.Description("Non-empty array of string tokens, e.g. [\"a\", \"1\", \"$\"]."),
			mcp.Required(),
		),
	)
	s.AddTool(tool, Handler(id))
	return s
}

// Handler returns the tool handler. Arguments go through the same request
// validation as POST /bfhl.
func Handler(id config.Identity) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := json.Marshal(request.Params.Arguments)
		if err != nil {
			return nil, fmt.Errorf("encode arguments: %w", err)
		}

		tokens, err := api.ParseRequest(args)
		if err != nil {
			var verr *api.ValidationError
			if errors.As(err, &verr) {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}
			return nil, err
		}

		resp, err := api.Process(id, tokens)
		if err != nil {
			return nil, fmt.Errorf("classify: %w", err)
		}

		out, err := json.Marshal(resp)
		if err != nil {
			return nil, fmt.Errorf("encode result: %w", err)
		}
		slog.Debug("mcp: classified", "tokens", len(tokens), "sum", resp.Sum)
		return mcp.NewToolResultText(string(out)), nil
	}
}

// ServeStdio runs s on the given streams until ctx is cancelled or stdin
// closes. Protocol errors are logged through logger, never to stdout.
func ServeStdio(ctx context.Context, s *server.MCPServer, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))

	logger.Info("starting MCP server via stdio", "tool", ToolName)
	if err := stdio.Listen(ctx, stdin, stdout); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp stdio: %w", err)
	}
	return nil
}
