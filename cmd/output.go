package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"themectl/internal/config"
	"themectl/internal/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// printStructured writes v as JSON or YAML. Table output is handled by the
// caller since each command has its own columns.
func printStructured(w io.Writer, format config.OutputFormat, v interface{}) error {
	switch format {
	case config.OutputFormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	case config.OutputFormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to convert to YAML: %w", err)
		}
		fmt.Fprint(w, string(data))
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// newTable creates a rounded table that writes to w on Render.
func newTable(w io.Writer, columns ...string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	headers := make(table.Row, len(columns))
	for i, col := range columns {
		headers[i] = text.FgHiCyan.Sprint(strings.ToUpper(col))
	}
	t.AppendHeader(headers)
	return t
}

// swatchCell renders hex on its own color. Terminals without color support
// just get the hex text.
func swatchCell(hex string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(theme.ReadableText(hex))).
		Render(" " + hex + " ")
}
