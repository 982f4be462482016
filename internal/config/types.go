package config

import (
	"fmt"

	"themectl/internal/theme"
)

// ThemectlConfig is the top-level configuration structure for themectl.
type ThemectlConfig struct {
	// Scheme is "light" or "dark".
	Scheme string `yaml:"scheme,omitempty"`
	// Palette is an overlay: only the colors set here replace the defaults.
	Palette theme.Palette  `yaml:"palette,omitempty"`
	Output  OutputSettings `yaml:"output,omitempty"`
	Logging LoggingConfig  `yaml:"logging,omitempty"`
}

// OutputFormat is how list-like command results are printed.
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates s. An empty string means table.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "", OutputFormatTable:
		return OutputFormatTable, nil
	case OutputFormatJSON, OutputFormatYAML:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

type OutputSettings struct {
	Format OutputFormat `yaml:"format,omitempty"`
}

type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error
}

// Theme merges the configured palette over the shipped one and validates
// the result.
func (c ThemectlConfig) Theme() (*theme.Theme, error) {
	scheme, err := theme.ParseScheme(c.Scheme)
	if err != nil {
		return nil, err
	}
	th, err := theme.New(theme.DefaultPalette().Merge(c.Palette), scheme)
	if err != nil {
		return nil, fmt.Errorf("invalid palette configuration: %w", err)
	}
	return th, nil
}
