package cli

import (
	"fmt"

	"github.com/alexanderramin/showdeck/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTravelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "travel",
		Short: "Print saved travel bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTravel(app.Organizer.State().Travel))
			return nil
		},
	}
}
