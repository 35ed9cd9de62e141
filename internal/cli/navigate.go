package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack. A modal view
// replaces any modal already on top: only one modal is ever open.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// modalDoneMsg is sent when a stacked editor finishes (commit or cancel).
// The appModel handles it atomically: pop the top view, run nextCmd, then
// broadcast a refresh.
type modalDoneMsg struct {
	nextCmd tea.Cmd
}

// refreshViewMsg tells every view on the stack that the shared state
// changed underneath it.
type refreshViewMsg struct{}

// remoteChangeMsg is injected by the sync listener when a remote document
// change has overwritten part of the local state.
type remoteChangeMsg struct{}

// statusMsg sets the transient status line.
type statusMsg struct {
	text string
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// setStatus returns a tea.Cmd that sets the status line.
func setStatus(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

// refreshViews returns a tea.Cmd that broadcasts a state refresh.
func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}
