package cmd

import (
	"fmt"

	"themectl/internal/theme"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <status>...",
		Short: "Print the color used for attendance statuses",
		Long: `Print the palette color the attendance history uses for each status.

present uses success.main, absent uses error.main and leave uses
warning.main. Any other status gets the neutral fallback.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, th, err := loadSettings()
			if err != nil {
				return err
			}
			for _, s := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", s, th.StatusColor(theme.AttendanceStatus(s)))
			}
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newStatusCmd())
}
