package cmd

import (
	"fmt"
	"os"

	"themectl/internal/config"
	"themectl/internal/theme"
	"themectl/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	// rootConfigPath is an extra config file layered over user and project config.
	rootConfigPath string
	// rootDebug forces debug logging regardless of the configured level.
	rootDebug bool
	// rootScheme overrides the configured color scheme when set.
	rootScheme string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "themectl",
	Short: "Inspect and transform the attendance app color theme",
	Long: `themectl works with the color theme of the attendance app.

It converts palette colors to rgba() strings, derives lighter and darker
variants, prints the palette, previews it in the terminal and exposes the
same transforms to AI assistants over MCP.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid colors, unreadable config)
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set up version template
	rootCmd.SetVersionTemplate(`{{printf "themectl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "config file layered over ~/.config/themectl/config.yaml and ./.themectl/config.yaml")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&rootScheme, "scheme", "", "Color scheme to use (light or dark)")
}

// initLogging sends logs to stderr; stdout carries command output and, for
// serve, the MCP protocol.
func initLogging() error {
	level := logging.LevelWarn
	if rootDebug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, os.Stderr)
	return nil
}

// loadSettings loads the layered config and builds the theme from it,
// applying command-line overrides.
func loadSettings() (config.ThemectlConfig, *theme.Theme, error) {
	cfg, err := config.LoadConfig(rootConfigPath)
	if err != nil {
		return config.ThemectlConfig{}, nil, err
	}
	if rootScheme != "" {
		cfg.Scheme = rootScheme
	}

	if !rootDebug {
		level, err := logging.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return config.ThemectlConfig{}, nil, fmt.Errorf("invalid logging level in config: %w", err)
		}
		logging.InitForCLI(level, os.Stderr)
	}

	th, err := cfg.Theme()
	if err != nil {
		return config.ThemectlConfig{}, nil, err
	}
	logging.Debug("CLI", "Using %s scheme", th.Scheme)
	return cfg, th, nil
}
