package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/showdeck/internal/cli/formatter"
	"github.com/alexanderramin/showdeck/internal/domain"
	"github.com/alexanderramin/showdeck/internal/schedule"
	"github.com/alexanderramin/showdeck/internal/timeutil"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// focusArea selects which list the cursor moves through.
type focusArea int

const (
	focusMeetings focusArea = iota
	focusTravel
)

// scheduleView is the home view: day navigation, the agenda or hourly
// panel, the detail cards for the selected day, and the travel list.
type scheduleView struct {
	state  *SharedState
	focus  focusArea
	cursor int
	vp     viewport.Model
	ready  bool
}

func newScheduleView(state *SharedState) *scheduleView {
	vp := viewport.New(0, 0)
	vp.KeyMap = scheduleViewportKeyMap()
	vp.MouseWheelEnabled = true
	return &scheduleView{state: state, vp: vp}
}

func (v *scheduleView) ID() ViewID    { return ViewSchedule }
func (v *scheduleView) Title() string { return "Schedule" }

func (v *scheduleView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "agenda/hourly")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←→", "day")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "meetings/travel")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add meeting")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "add travel")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	}
	return bindings
}

func (v *scheduleView) Init() tea.Cmd { return nil }

// dayMeetings returns the selected day's meetings in start order.
func (v *scheduleView) dayMeetings() []*domain.Meeting {
	return schedule.MeetingsOn(v.state.Organizer.State().Meetings, v.state.SelectedDate)
}

func (v *scheduleView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		v.ready = true
		v.vp.SetContent(v.renderContent())
		return v, nil

	case refreshViewMsg, remoteChangeMsg:
		v.clampCursor()
		v.vp.SetContent(v.renderContent())
		return v, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		model, cmd := v.handleKey(msg)
		v.vp.SetContent(v.renderContent())
		return model, cmd
	}
	return v, nil
}

func (v *scheduleView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		if v.state.Mode == ModeAgenda {
			v.state.Mode = ModeHourly
		} else {
			v.state.Mode = ModeAgenda
		}
	case "left", "h":
		v.state.SelectedDate = schedule.StepDay(v.state.Organizer.State().Meetings, v.state.SelectedDate, -1)
		v.cursor = 0
	case "right", "l":
		v.state.SelectedDate = schedule.StepDay(v.state.Organizer.State().Meetings, v.state.SelectedDate, +1)
		v.cursor = 0
	case "f":
		if v.focus == focusMeetings {
			v.focus = focusTravel
		} else {
			v.focus = focusMeetings
		}
		v.cursor = 0
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < v.focusedLen()-1 {
			v.cursor++
		}
	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	case "a":
		return v, v.addMeeting()
	case "t":
		return v, v.addTravel()
	case "e", "enter":
		return v, v.editSelected()
	case "d":
		return v, v.deleteSelected()
	case "g":
		return v, v.setAssistantLink()
	case "o":
		url := v.state.Organizer.State().AssistantURL
		if url == "" {
			return v, setStatus("No assistant link saved. Press 'g' to set one.")
		}
		return v, setStatus("Assistant link: " + url)
	case "x":
		return v, v.exportDocument()
	case "i":
		return v, v.importDocument()
	}
	return v, nil
}

func (v *scheduleView) focusedLen() int {
	if v.focus == focusTravel {
		return len(v.state.Organizer.State().Travel)
	}
	return len(v.dayMeetings())
}

func (v *scheduleView) clampCursor() {
	if n := v.focusedLen(); v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// selectedMeeting returns the meeting under the cursor, or nil.
func (v *scheduleView) selectedMeeting() *domain.Meeting {
	meetings := v.dayMeetings()
	if v.focus != focusMeetings || v.cursor >= len(meetings) {
		return nil
	}
	return meetings[v.cursor]
}

// selectedTravel returns the travel item under the cursor, or nil.
func (v *scheduleView) selectedTravel() *domain.TravelItem {
	travel := v.state.Organizer.State().Travel
	if v.focus != focusTravel || v.cursor >= len(travel) {
		return nil
	}
	return travel[v.cursor]
}

// ── actions ──────────────────────────────────────────────────────────────────

func (v *scheduleView) addMeeting() tea.Cmd {
	vals := newMeetingFormValues(&domain.Meeting{})
	org := v.state.Organizer
	return openModal(v.state, "Add meeting", meetingForm(vals), func() tea.Cmd {
		return func() tea.Msg {
			m := &domain.Meeting{}
			vals.apply(m)
			if err := org.AddMeeting(context.Background(), m); err != nil {
				return statusMsg{text: "Add failed: " + err.Error()}
			}
			return statusMsg{text: fmt.Sprintf("Added %q.", m.Title)}
		}
	})
}

func (v *scheduleView) addTravel() tea.Cmd {
	vals := newTravelFormValues(&domain.TravelItem{})
	org := v.state.Organizer
	return openModal(v.state, "Add travel", travelForm(vals), func() tea.Cmd {
		return func() tea.Msg {
			t := &domain.TravelItem{}
			vals.apply(t)
			if err := org.AddTravel(context.Background(), t); err != nil {
				return statusMsg{text: "Add failed: " + err.Error()}
			}
			return statusMsg{text: fmt.Sprintf("Added %s.", t.Label)}
		}
	})
}

// editSelected opens the edit form for the record under the cursor. A
// meeting edit works on a deep-copied draft: the form commits into the
// draft, then the attendee editor takes over and only its save commits
// the draft back into the state.
func (v *scheduleView) editSelected() tea.Cmd {
	if m := v.selectedMeeting(); m != nil {
		draft := m.Clone()
		vals := newMeetingFormValues(draft)
		state := v.state
		return openModal(v.state, "Edit meeting", meetingForm(vals), func() tea.Cmd {
			vals.apply(draft)
			return pushView(newAttendeesView(state, draft))
		})
	}
	if t := v.selectedTravel(); t != nil {
		draft := t.Clone()
		vals := newTravelFormValues(draft)
		org := v.state.Organizer
		return openModal(v.state, "Edit travel", travelForm(vals), func() tea.Cmd {
			return func() tea.Msg {
				vals.apply(draft)
				if err := org.CommitTravel(context.Background(), draft); err != nil {
					return statusMsg{text: "Save failed: " + err.Error()}
				}
				return statusMsg{text: "Travel updated."}
			}
		})
	}
	return setStatus("Nothing selected.")
}

// deleteSelected removes the record under the cursor right away. There is
// no confirmation prompt and no undo.
func (v *scheduleView) deleteSelected() tea.Cmd {
	ctx := context.Background()
	org := v.state.Organizer
	if m := v.selectedMeeting(); m != nil {
		if err := org.DeleteMeeting(ctx, m.ID); err != nil {
			return setStatus("Delete failed: " + err.Error())
		}
		v.clampCursor()
		return setStatus(fmt.Sprintf("Deleted %q.", m.Title))
	}
	if t := v.selectedTravel(); t != nil {
		if err := org.DeleteTravel(ctx, t.ID); err != nil {
			return setStatus("Delete failed: " + err.Error())
		}
		v.clampCursor()
		return setStatus(fmt.Sprintf("Deleted %q.", t.Label))
	}
	return setStatus("Nothing selected.")
}

func (v *scheduleView) setAssistantLink() tea.Cmd {
	url := v.state.Organizer.State().AssistantURL
	org := v.state.Organizer
	return openModal(v.state, "Assistant link", linkForm(&url), func() tea.Cmd {
		return func() tea.Msg {
			org.SetAssistantURL(context.Background(), url)
			if strings.TrimSpace(url) == "" {
				return statusMsg{text: "Assistant link cleared."}
			}
			return statusMsg{text: "Assistant link saved."}
		}
	})
}

func (v *scheduleView) exportDocument() tea.Cmd {
	path := schedule.ExportFileName(time.Now())
	org := v.state.Organizer
	return openModal(v.state, "Export", pathForm("Export to file", &path), func() tea.Cmd {
		return func() tea.Msg {
			data, err := org.Export()
			if err != nil {
				return statusMsg{text: "Export failed: " + err.Error()}
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return statusMsg{text: "Export failed: " + err.Error()}
			}
			return statusMsg{text: "Exported to " + path + "."}
		}
	})
}

func (v *scheduleView) importDocument() tea.Cmd {
	var path string
	state := v.state
	return openModal(v.state, "Import", pathForm("Import from file", &path), func() tea.Cmd {
		return func() tea.Msg {
			data, err := os.ReadFile(path)
			if err != nil {
				return statusMsg{text: "Import failed: " + err.Error()}
			}
			if err := state.Organizer.Import(context.Background(), data); err != nil {
				return statusMsg{text: "Import failed: " + err.Error()}
			}
			state.ResetSelectedDate()
			return statusMsg{text: "Imported " + path + "."}
		}
	})
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *scheduleView) View() string {
	if !v.ready {
		return v.renderContent()
	}
	return v.vp.View()
}

func (v *scheduleView) renderContent() string {
	state := v.state.Organizer.State()
	meetings := v.dayMeetings()

	var b strings.Builder
	b.WriteString("\n" + v.renderDayNav() + "\n\n")

	if v.state.Mode == ModeHourly {
		b.WriteString(formatter.FormatHourly(schedule.HourSlots(state.Meetings, v.state.SelectedDate)))
		b.WriteString("\n\n")
	} else {
		b.WriteString(v.renderMeetingRows(meetings))
		b.WriteString("\n")
	}

	if m := v.selectedMeeting(); m != nil {
		b.WriteString(formatter.FormatDetails([]*domain.Meeting{m}))
		b.WriteString("\n")
	}

	b.WriteString(formatter.Header("Travel") + "\n")
	b.WriteString(v.renderTravelRows(state.Travel))

	if banner := formatter.FormatAssistantBanner(state.AssistantURL); banner != "" {
		b.WriteString("\n" + banner + "\n")
	}

	return b.String()
}

// renderDayNav shows the selected date with its position among the days
// that have meetings.
func (v *scheduleView) renderDayNav() string {
	days := schedule.DistinctDays(v.state.Organizer.State().Meetings)
	pos := ""
	for i, d := range days {
		if timeutil.SameDay(d, v.state.SelectedDate) {
			pos = formatter.Dim(fmt.Sprintf("  day %d of %d", i+1, len(days)))
			break
		}
	}

	mode := "agenda"
	if v.state.Mode == ModeHourly {
		mode = "hourly"
	}
	return formatter.Dim("◂ ") +
		formatter.Bold(timeutil.FormatDate(v.state.SelectedDate)) +
		formatter.Dim(" ▸") + pos +
		formatter.Dim("  ["+mode+"]")
}

func (v *scheduleView) renderMeetingRows(meetings []*domain.Meeting) string {
	if len(meetings) == 0 {
		return "  " + formatter.Dim("No meetings for this date.") + "\n"
	}
	var b strings.Builder
	for i, m := range meetings {
		cursor := "  "
		if v.focus == focusMeetings && i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		line := fmt.Sprintf("%s%s  %s", cursor,
			formatter.StyleYellow.Render(timeutil.FormatRange(m.Start, m.End)),
			formatter.Bold(m.Title))
		if loc := meetingPlace(m); loc != "" {
			line += "  " + formatter.Dim(loc)
		}
		if n := len(m.Attendees); n > 0 {
			line += "  " + formatter.StyleBlue.Render(fmt.Sprintf("%d attendee(s)", n))
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (v *scheduleView) renderTravelRows(travel []*domain.TravelItem) string {
	if len(travel) == 0 {
		return "  " + formatter.Dim("No travel saved.") + "\n"
	}
	var b strings.Builder
	for i, t := range travel {
		cursor := "  "
		if v.focus == focusTravel && i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		line := fmt.Sprintf("%s%s %s", cursor,
			formatter.StylePurple.Render("["+strings.ToUpper(string(t.Type))+"]"),
			formatter.Bold(t.Label))
		if t.Confirmation != "" {
			line += "  " + formatter.Dim("Conf# "+t.Confirmation)
		}
		if t.Start != nil {
			line += "  " + formatter.Dim(t.Start.Format("Jan 2 15:04"))
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func meetingPlace(m *domain.Meeting) string {
	switch {
	case m.Location != "" && m.Booth != "":
		return m.Location + ", Booth " + m.Booth
	case m.Booth != "":
		return "Booth " + m.Booth
	default:
		return m.Location
	}
}

// scheduleViewportKeyMap restricts viewport scrolling to page keys so the
// letter and arrow keys stay free for list navigation.
func scheduleViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
	}
}
