package cmd

import (
	"fmt"

	"themectl/internal/color"
	"themectl/internal/config"
	"themectl/internal/theme"

	"github.com/spf13/cobra"
)

var (
	paletteOutputFormat string
	paletteAmount       float64
	paletteOpacity      float64
)

// paletteRow is one palette color with its derived variants.
type paletteRow struct {
	Path    string `json:"path" yaml:"path"`
	Hex     string `json:"hex" yaml:"hex"`
	RGBA    string `json:"rgba" yaml:"rgba"`
	Lighter string `json:"lighter" yaml:"lighter"`
	Darker  string `json:"darker" yaml:"darker"`
}

var paletteCmd = &cobra.Command{
	Use:   "palette [path]",
	Short: "Print the theme palette",
	Long: `Print every color in the theme palette together with its rgba() tint and
its lighter and darker variants.

A dotted path such as primary.main or grey.500 prints only that color.
Configured palette overrides are applied.

Examples:
  themectl palette
  themectl palette primary.main
  themectl palette -o yaml --amount 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPalette,
}

var navigationCmd = &cobra.Command{
	Use:   "navigation",
	Short: "Print the navigation colors for the active scheme",
	Long: `Print the colors handed to the app's navigation container for the
configured scheme. Use --scheme to pick light or dark explicitly.`,
	Args: cobra.NoArgs,
	RunE: runNavigation,
}

func init() {
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(navigationCmd)

	paletteCmd.Flags().StringVarP(&paletteOutputFormat, "output", "o", "", "Output format (table, json, yaml); defaults to the configured format")
	paletteCmd.Flags().Float64Var(&paletteAmount, "amount", 10, "Amount used for the lighter and darker variants")
	paletteCmd.Flags().Float64Var(&paletteOpacity, "opacity", 0.15, "Opacity used for the rgba() column")
	navigationCmd.Flags().StringVarP(&paletteOutputFormat, "output", "o", "", "Output format (table, json, yaml); defaults to the configured format")
}

func outputFormat(cfg config.ThemectlConfig) (config.OutputFormat, error) {
	if paletteOutputFormat != "" {
		return config.ParseOutputFormat(paletteOutputFormat)
	}
	return config.ParseOutputFormat(string(cfg.Output.Format))
}

func buildPaletteRows(th *theme.Theme, entries []theme.Entry, amount, opacity float64) []paletteRow {
	rows := make([]paletteRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, paletteRow{
			Path:    e.Path,
			Hex:     e.Hex,
			RGBA:    th.Alpha(e.Hex, opacity),
			Lighter: th.Lighten(e.Hex, amount),
			Darker:  th.Darken(e.Hex, amount),
		})
	}
	return rows
}

func runPalette(cmd *cobra.Command, args []string) error {
	cfg, th, err := loadSettings()
	if err != nil {
		return err
	}
	format, err := outputFormat(cfg)
	if err != nil {
		return err
	}

	entries := th.Palette.Entries()
	if len(args) == 1 {
		hex, ok := th.Palette.Lookup(args[0])
		if !ok {
			return fmt.Errorf("palette path not found: %s", args[0])
		}
		entries = []theme.Entry{{Path: args[0], Hex: hex}}
	}
	rows := buildPaletteRows(th, entries, paletteAmount, paletteOpacity)

	w := cmd.OutOrStdout()
	if format != config.OutputFormatTable {
		return printStructured(w, format, rows)
	}

	t := newTable(w, "path", "color", "rgba "+color.FormatNumber(paletteOpacity),
		"lighten "+color.FormatNumber(paletteAmount), "darken "+color.FormatNumber(paletteAmount))
	for _, r := range rows {
		t.AppendRow([]interface{}{r.Path, swatchCell(r.Hex), r.RGBA, swatchCell(r.Lighter), swatchCell(r.Darker)})
	}
	t.Render()
	return nil
}

func runNavigation(cmd *cobra.Command, args []string) error {
	cfg, th, err := loadSettings()
	if err != nil {
		return err
	}
	format, err := outputFormat(cfg)
	if err != nil {
		return err
	}

	nav := th.Navigation()
	w := cmd.OutOrStdout()
	if format != config.OutputFormatTable {
		return printStructured(w, format, nav)
	}

	t := newTable(w, "role", "color")
	t.AppendRow([]interface{}{"primary", swatchCell(nav.Primary)})
	t.AppendRow([]interface{}{"background", swatchCell(nav.Background)})
	t.AppendRow([]interface{}{"card", swatchCell(nav.Card)})
	t.AppendRow([]interface{}{"text", swatchCell(nav.Text)})
	t.AppendRow([]interface{}{"border", swatchCell(nav.Border)})
	t.AppendRow([]interface{}{"notification", swatchCell(nav.Notification)})
	t.SetCaption("scheme: %s", th.Scheme)
	t.Render()
	return nil
}
