package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace schedule data from a JSON document",
		Long: `Import a previously exported document. Only the fields present in
the document are replaced; absent fields keep their current values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading document: %w", err)
			}
			if err := app.Organizer.Import(cmd.Context(), data); err != nil {
				return err
			}

			state := app.Organizer.State()
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d meeting(s), %d travel item(s)\n",
				len(state.Meetings), len(state.Travel))
			return nil
		},
	}
}
