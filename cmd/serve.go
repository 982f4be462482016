package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"themectl/internal/mcptools"

	"github.com/spf13/cobra"
)

// serveCmd starts an MCP server on stdio so AI assistants can call the
// color transforms with the configured palette.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the color tools over MCP on stdio",
	Long: `Starts a Model Context Protocol server on stdin/stdout.

Tools:
  color_alpha        hex + opacity -> rgba() string
  color_lighten      hex + amount  -> lighter hex
  color_darken       hex + amount  -> darker hex
  palette_get        full palette, or one color by dotted path
  status_color       attendance status -> color
  navigation_colors  navigation container colors for a scheme

Register it with your assistant as a stdio server running "themectl serve".
Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	_, th, err := loadSettings()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := mcptools.NewServer(th, rootCmd.Version)
	return mcptools.Serve(ctx, srv, os.Stdin, os.Stdout)
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
