package cmd

import (
	"fmt"

	"themectl/internal/tui"

	"github.com/spf13/cobra"
)

var previewAmount float64

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse the palette in an interactive terminal preview",
	Long: `Open a full-screen preview of the theme palette.

Each color is shown next to its lighter and darker variants and its 15%
alpha tint. Use +/- to change the amount, D to switch between the light and
dark scheme, c to copy the selected hex and ? for help.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, th, err := loadSettings()
		if err != nil {
			return err
		}

		p := tui.NewProgram(th, tui.WithAmount(previewAmount))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running preview: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().Float64Var(&previewAmount, "amount", tui.DefaultAmount, "Initial lighten/darken amount")
}
