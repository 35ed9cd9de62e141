package cli

import (
	"fmt"

	"github.com/alexanderramin/showdeck/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newLinkCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Manage the external assistant link",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the saved assistant link",
			RunE: func(cmd *cobra.Command, args []string) error {
				url := app.Organizer.State().AssistantURL
				if url == "" {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No assistant link saved."))
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), url)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <url>",
			Short: "Save the assistant link",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				app.Organizer.SetAssistantURL(cmd.Context(), args[0])
				fmt.Fprintln(cmd.OutOrStdout(), "Assistant link saved.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the assistant link",
			RunE: func(cmd *cobra.Command, args []string) error {
				app.Organizer.SetAssistantURL(cmd.Context(), "")
				fmt.Fprintln(cmd.OutOrStdout(), "Assistant link cleared.")
				return nil
			},
		},
	)

	return cmd
}
