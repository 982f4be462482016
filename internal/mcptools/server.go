package mcptools

import (
	"context"
	"io"

	"themectl/internal/theme"
	"themectl/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

const serverName = "themectl"

// NewServer builds an MCP server exposing the color tools for th.
func NewServer(th *theme.Theme, version string) *server.MCPServer {
	mcpServer := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(false),
	)
	mcpServer.AddTools(NewTools(th).ServerTools()...)
	return mcpServer
}

// Serve runs srv over the given streams until ctx is cancelled or the input
// is closed. stdout must carry nothing but protocol messages.
func Serve(ctx context.Context, srv *server.MCPServer, stdin io.Reader, stdout io.Writer) error {
	logging.Info("MCP", "Serving color tools over stdio")
	stdio := server.NewStdioServer(srv)
	err := stdio.Listen(ctx, stdin, stdout)
	if err != nil && ctx.Err() == nil {
		logging.Error("MCP", err, "stdio server stopped")
		return err
	}
	logging.Info("MCP", "stdio server stopped")
	return nil
}
