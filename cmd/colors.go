package cmd

import (
	"fmt"
	"strconv"

	"themectl/internal/color"
	"themectl/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// For mocking in tests
var clipboardWrite = clipboard.WriteAll

// colorFlags are shared by rgba, lighten and darken.
type colorFlags struct {
	copy   bool
	strict bool
}

func (f *colorFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.copy, "copy", false, "Also copy the result to the clipboard")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Reject colors that are not #RRGGBB instead of passing them through")
	// Flags go before the color so negative amounts are not read as flags.
	cmd.Flags().SetInterspersed(false)
}

func newRGBACmd() *cobra.Command {
	flags := &colorFlags{}
	cmd := &cobra.Command{
		Use:   "rgba <#RRGGBB> <opacity>",
		Short: "Convert a hex color to an rgba() string",
		Long: `Convert a #RRGGBB color to rgba(R, G, B, opacity).

The opacity is printed as given and is not clamped to [0, 1].

Examples:
  themectl rgba "#4CAF50" 0.15     # rgba(76, 175, 80, 0.15)`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opacity, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid opacity %q: %w", args[1], err)
			}
			return emitColor(cmd, flags, args[0], func(hex string) string {
				return color.Alpha(hex, opacity)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newLightenCmd() *cobra.Command {
	return newAdjustCmd("lighten", "Lighten a hex color by an amount (0-100)", color.Lighten)
}

func newDarkenCmd() *cobra.Command {
	return newAdjustCmd("darken", "Darken a hex color by an amount (0-100)", color.Darken)
}

func newAdjustCmd(name, short string, fn func(string, float64) string) *cobra.Command {
	flags := &colorFlags{}
	cmd := &cobra.Command{
		Use:   name + " <#RRGGBB> <amount>",
		Short: short,
		Long: short + `.

Every channel is shifted by round(2.55 × amount) and clamped to 0-255, so an
amount of 100 always saturates. Negative amounts go the other way.

Examples:
  themectl ` + name + ` "#4CAF50" 10`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			return emitColor(cmd, flags, args[0], func(hex string) string {
				return fn(hex, amount)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func emitColor(cmd *cobra.Command, flags *colorFlags, hex string, transform func(string) string) error {
	if !color.Valid(hex) {
		if flags.strict {
			_, err := color.ParseHex(hex)
			return err
		}
		logging.Warn("CLI", "%q is not a #RRGGBB color; result is undefined", hex)
	}

	result := transform(hex)
	fmt.Fprintln(cmd.OutOrStdout(), result)

	if flags.copy {
		if err := clipboardWrite(result); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		logging.Debug("CLI", "Copied %s to clipboard", result)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newRGBACmd())
	rootCmd.AddCommand(newLightenCmd())
	rootCmd.AddCommand(newDarkenCmd())
}
