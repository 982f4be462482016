package mcptools

import (
	"context"
	"encoding/json"
	"fmt"

	"themectl/internal/color"
	"themectl/internal/theme"
	"themectl/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ToolAlpha       = "color_alpha"
	ToolLighten     = "color_lighten"
	ToolDarken      = "color_darken"
	ToolPaletteGet  = "palette_get"
	ToolStatusColor = "status_color"
	ToolNavigation  = "navigation_colors"
)

// Tools exposes a theme's color helpers as MCP tools.
type Tools struct {
	theme *theme.Theme
}

// NewTools creates the tool set for th.
func NewTools(th *theme.Theme) *Tools {
	return &Tools{theme: th}
}

// ServerTools returns every tool with its handler, ready for AddTools.
func (t *Tools) ServerTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool(ToolAlpha,
				mcp.WithDescription("Convert a #RRGGBB color to an rgba() string with the given opacity"),
				mcp.WithString("hex", mcp.Required(), mcp.Description("Color in #RRGGBB form")),
				mcp.WithNumber("opacity", mcp.Required(), mcp.Description("Opacity, conventionally 0-1; not clamped")),
			),
			Handler: t.handleAlpha,
		},
		{
			Tool: mcp.NewTool(ToolLighten,
				mcp.WithDescription("Lighten a #RRGGBB color by a percentage-like amount (0-100)"),
				mcp.WithString("hex", mcp.Required(), mcp.Description("Color in #RRGGBB form")),
				mcp.WithNumber("amount", mcp.Required(), mcp.Description("Amount to lighten by; negative darkens")),
			),
			Handler: t.handleLighten,
		},
		{
			Tool: mcp.NewTool(ToolDarken,
				mcp.WithDescription("Darken a #RRGGBB color by a percentage-like amount (0-100)"),
				mcp.WithString("hex", mcp.Required(), mcp.Description("Color in #RRGGBB form")),
				mcp.WithNumber("amount", mcp.Required(), mcp.Description("Amount to darken by; negative lightens")),
			),
			Handler: t.handleDarken,
		},
		{
			Tool: mcp.NewTool(ToolPaletteGet,
				mcp.WithDescription("Get the app palette, or a single color by dotted path such as primary.main"),
				mcp.WithString("path", mcp.Description("Dotted palette path; omit for the whole palette")),
			),
			Handler: t.handlePaletteGet,
		},
		{
			Tool: mcp.NewTool(ToolStatusColor,
				mcp.WithDescription("Get the color used for an attendance status"),
				mcp.WithString("status", mcp.Required(), mcp.Description("present, absent or leave")),
			),
			Handler: t.handleStatusColor,
		},
		{
			Tool: mcp.NewTool(ToolNavigation,
				mcp.WithDescription("Get the navigation container colors for a scheme"),
				mcp.WithString("scheme", mcp.Description("light or dark; defaults to the configured scheme"), mcp.Enum("light", "dark")),
			),
			Handler: t.handleNavigation,
		},
	}
}

// requireHex reads the hex argument and rejects malformed colors, so tool
// callers get an error instead of a NaN-filled string.
func requireHex(request mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	hex, err := request.RequireString("hex")
	if err != nil {
		return "", mcp.NewToolResultError("hex parameter is required")
	}
	if _, err := color.ParseHex(hex); err != nil {
		return "", mcp.NewToolResultError(err.Error())
	}
	return hex, nil
}

func (t *Tools) handleAlpha(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hex, errResult := requireHex(request)
	if errResult != nil {
		return errResult, nil
	}
	opacity, err := request.RequireFloat("opacity")
	if err != nil {
		return mcp.NewToolResultError("opacity parameter is required and must be a number"), nil
	}
	logging.Debug("MCP", "%s hex=%s opacity=%v", ToolAlpha, hex, opacity)
	return mcp.NewToolResultText(t.theme.Alpha(hex, opacity)), nil
}

func (t *Tools) handleLighten(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.adjust(request, ToolLighten, t.theme.Lighten)
}

func (t *Tools) handleDarken(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.adjust(request, ToolDarken, t.theme.Darken)
}

func (t *Tools) adjust(request mcp.CallToolRequest, tool string, fn func(string, float64) string) (*mcp.CallToolResult, error) {
	hex, errResult := requireHex(request)
	if errResult != nil {
		return errResult, nil
	}
	amount, err := request.RequireFloat("amount")
	if err != nil {
		return mcp.NewToolResultError("amount parameter is required and must be a number"), nil
	}
	logging.Debug("MCP", "%s hex=%s amount=%v", tool, hex, amount)
	return mcp.NewToolResultText(fn(hex, amount)), nil
}

func (t *Tools) handlePaletteGet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := request.GetString("path", "")
	if path != "" {
		hex, ok := t.theme.Palette.Lookup(path)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("Palette path not found: %s", path)), nil
		}
		return mcp.NewToolResultText(hex), nil
	}

	jsonData, err := json.MarshalIndent(t.theme.Palette, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format palette: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (t *Tools) handleStatusColor(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := request.RequireString("status")
	if err != nil {
		return mcp.NewToolResultError("status parameter is required"), nil
	}
	return mcp.NewToolResultText(t.theme.StatusColor(theme.AttendanceStatus(status))), nil
}

func (t *Tools) handleNavigation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scheme := t.theme.Scheme
	if raw := request.GetString("scheme", ""); raw != "" {
		parsed, err := theme.ParseScheme(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		scheme = parsed
	}

	jsonData, err := json.MarshalIndent(theme.Navigation(scheme), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format navigation colors: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
