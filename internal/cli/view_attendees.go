package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/showdeck/internal/cli/formatter"
	"github.com/alexanderramin/showdeck/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// attendeesView edits the attendee roster of a meeting draft. All edits
// land on the draft only; nothing persists until 's' commits the draft
// back through the Organizer. Escape discards the whole draft.
type attendeesView struct {
	state  *SharedState
	draft  *domain.Meeting
	cursor int
}

func newAttendeesView(state *SharedState, draft *domain.Meeting) *attendeesView {
	return &attendeesView{state: state, draft: draft}
}

func (v *attendeesView) ID() ViewID { return ViewAttendees }
func (v *attendeesView) Title() string {
	return "Attendees: " + v.draft.Title
}

func (v *attendeesView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save meeting")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard")),
	}
}

func (v *attendeesView) Init() tea.Cmd { return nil }

func (v *attendeesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.clampCursor()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.draft.Attendees)-1 {
				v.cursor++
			}
		case "a":
			return v, v.addAttendee()
		case "e", "enter":
			if v.cursor < len(v.draft.Attendees) {
				return v, v.editAttendee(v.cursor)
			}
		case "d":
			if v.cursor < len(v.draft.Attendees) {
				removed := v.draft.Attendees[v.cursor]
				v.draft.RemoveAttendee(removed.ID)
				v.clampCursor()
				return v, setStatus(fmt.Sprintf("Removed %s.", displayName(removed)))
			}
		case "s":
			return v, v.saveDraft()
		case "esc":
			return v, tea.Batch(popView(), setStatus("Changes discarded."))
		}
	}
	return v, nil
}

func (v *attendeesView) addAttendee() tea.Cmd {
	vals := newAttendeeFormValues(domain.Attendee{})
	return openModal(v.state, "Add attendee", attendeeForm(vals), func() tea.Cmd {
		a := domain.Attendee{ID: domain.NewID()}
		vals.apply(&a)
		v.draft.Attendees = append(v.draft.Attendees, a)
		v.cursor = len(v.draft.Attendees) - 1
		return setStatus(fmt.Sprintf("Added %s.", displayName(a)))
	})
}

func (v *attendeesView) editAttendee(idx int) tea.Cmd {
	vals := newAttendeeFormValues(v.draft.Attendees[idx])
	return openModal(v.state, "Edit attendee", attendeeForm(vals), func() tea.Cmd {
		if idx >= len(v.draft.Attendees) {
			return nil
		}
		vals.apply(&v.draft.Attendees[idx])
		return setStatus("Attendee updated.")
	})
}

func (v *attendeesView) saveDraft() tea.Cmd {
	org := v.state.Organizer
	draft := v.draft
	return func() tea.Msg {
		ctx := context.Background()
		if err := org.CommitMeeting(ctx, draft); err != nil {
			return statusMsg{text: "Save failed: " + err.Error()}
		}
		return modalDoneMsg{nextCmd: setStatus("Meeting saved.")}
	}
}

func (v *attendeesView) clampCursor() {
	if v.cursor >= len(v.draft.Attendees) {
		v.cursor = len(v.draft.Attendees) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *attendeesView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Attendees") + "\n\n")

	if len(v.draft.Attendees) == 0 {
		b.WriteString("  " + formatter.Dim("No attendees yet. Press 'a' to add one.") + "\n")
		return b.String()
	}

	for i, a := range v.draft.Attendees {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		line := fmt.Sprintf("%s%s %s", cursor,
			formatter.StyleBlue.Render("("+a.Initial()+")"),
			formatter.Bold(displayName(a)))
		if aff := a.Affiliation(); aff != "" {
			line += "  " + formatter.Dim(aff)
		}
		b.WriteString(line + "\n")
		if i == v.cursor && a.Notes != "" {
			b.WriteString("      " + formatter.Dim(a.Notes) + "\n")
		}
	}
	return b.String()
}

func displayName(a domain.Attendee) string {
	if strings.TrimSpace(a.Name) == "" {
		return "(unnamed)"
	}
	return a.Name
}
