package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/showdeck/internal/schedule"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the full schedule to a JSON document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := schedule.ExportFileName(time.Now())
			if len(args) > 0 {
				path = args[0]
			}

			data, err := app.Organizer.Export()
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
			return nil
		},
	}
}
