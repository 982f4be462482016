package config

import (
	"themectl/internal/theme"
)

// GetDefaultConfig returns the configuration used when no file overrides it:
// the shipped palette, light scheme, table output and info logging.
func GetDefaultConfig() ThemectlConfig {
	return ThemectlConfig{
		Scheme:  string(theme.SchemeLight),
		Palette: theme.Palette{},
		Output: OutputSettings{
			Format: OutputFormatTable,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
