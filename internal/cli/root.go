package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/showdeck/internal/mirror"
	"github.com/alexanderramin/showdeck/internal/remote"
	"github.com/alexanderramin/showdeck/internal/schedule"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// hydrateTimeout bounds the startup fetch of remote documents so a dead
// sync endpoint cannot stall the UI.
const hydrateTimeout = 5 * time.Second

// App holds the wired services used by CLI commands and the TUI.
type App struct {
	Organizer *schedule.Organizer

	// Docs is nil when remote sync is not configured.
	Docs remote.DocStore

	// IsInteractive reports whether stdin is a terminal; the bare command
	// only launches the TUI when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "showdeck" command. Running it bare
// starts the TUI; subcommands give scripted access to the same state.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "showdeck",
		Short: "Trade show trip organizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("not a terminal; use a subcommand (agenda, travel, export, import, link)")
			}
			return runTUI(app)
		},
	}

	root.AddCommand(
		newAgendaCmd(app),
		newTravelCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newLinkCmd(app),
	)

	return root
}

// runTUI wires the sync listener (when configured) into the bubbletea
// program and runs the view stack until quit.
func runTUI(app *App) error {
	state := NewSharedState(app.Organizer)
	p := tea.NewProgram(newAppModel(state), tea.WithAltScreen(), tea.WithMouseCellMotion())

	if app.Docs != nil {
		listener := mirror.NewListener(app.Docs, app.Organizer.State(), func() {
			p.Send(remoteChangeMsg{})
		})

		ctx, cancel := context.WithTimeout(context.Background(), hydrateTimeout)
		listener.Hydrate(ctx)
		cancel()
		state.ResetSelectedDate()

		if err := listener.Start(); err != nil {
			return fmt.Errorf("starting sync listener: %w", err)
		}
		defer listener.Stop()
	}

	_, err := p.Run()
	return err
}
