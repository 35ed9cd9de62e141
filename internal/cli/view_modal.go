package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// modalView wraps a huh.Form as a View on the navigation stack. When the
// form completes, the onCommit callback runs and its command is delivered
// through modalDoneMsg so the appModel can pop the modal first.
type modalView struct {
	state    *SharedState
	form     *huh.Form
	titleStr string
	onCommit func() tea.Cmd
}

func newModalView(state *SharedState, title string, form *huh.Form, onCommit func() tea.Cmd) *modalView {
	return &modalView{
		state:    state,
		form:     form,
		titleStr: title,
		onCommit: onCommit,
	}
}

func (v *modalView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *modalView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape dismisses the modal without committing.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, func() tea.Msg { return modalDoneMsg{nextCmd: setStatus("Cancelled.")} }
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		var commitCmd tea.Cmd
		if v.onCommit != nil {
			commitCmd = v.onCommit()
		}
		return v, func() tea.Msg {
			return modalDoneMsg{nextCmd: tea.Batch(cmd, commitCmd)}
		}
	}

	return v, cmd
}

func (v *modalView) View() string {
	return v.form.View()
}

func (v *modalView) ID() ViewID    { return ViewModal }
func (v *modalView) Title() string { return v.titleStr }
func (v *modalView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// openModal returns a tea.Cmd that pushes a modal form view.
func openModal(state *SharedState, title string, form *huh.Form, onCommit func() tea.Cmd) tea.Cmd {
	return pushView(newModalView(state, title, form, onCommit))
}
