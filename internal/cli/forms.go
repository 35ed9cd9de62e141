package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/showdeck/internal/cli/formatter"
	"github.com/alexanderramin/showdeck/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// dateTimeLayout is the entry format for meeting and travel instants.
const dateTimeLayout = "2006-01-02 15:04"

// showdeckHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func showdeckHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateOptionalDateTime accepts a blank value or "YYYY-MM-DD HH:MM".
func validateOptionalDateTime(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.ParseInLocation(dateTimeLayout, strings.TrimSpace(s), time.Local); err != nil {
		return fmt.Errorf("use %s", dateTimeLayout)
	}
	return nil
}

// validateRequired rejects blank values.
func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// parseOptionalDateTime returns the parsed instant, or fallback when the
// value is blank.
func parseOptionalDateTime(s string, fallback time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	t, err := time.ParseInLocation(dateTimeLayout, s, time.Local)
	if err != nil {
		return fallback
	}
	return t
}

// formatOptionalInstant renders an instant for form prefill, blank for nil.
func formatOptionalInstant(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateTimeLayout)
}

// ── meeting form ─────────────────────────────────────────────────────────────

// meetingFormValues holds the string-typed bindings for the meeting form.
// Each field maps to one typed accessor on apply; no name-based lookups.
type meetingFormValues struct {
	Title         string
	Location      string
	Booth         string
	Start         string
	End           string
	Description   string
	TalkingPoints string
	PrepChecklist string
}

// newMeetingFormValues prefills the bindings from a draft. A zero Start or
// End prefills blank so the add form starts empty.
func newMeetingFormValues(m *domain.Meeting) *meetingFormValues {
	v := &meetingFormValues{
		Title:         m.Title,
		Location:      m.Location,
		Booth:         m.Booth,
		Description:   m.Description,
		TalkingPoints: m.TalkingPoints,
		PrepChecklist: m.PrepChecklist,
	}
	if !m.Start.IsZero() {
		v.Start = m.Start.Format(dateTimeLayout)
	}
	if !m.End.IsZero() {
		v.End = m.End.Format(dateTimeLayout)
	}
	return v
}

// apply copies the bindings back onto the draft. Blank instants keep the
// draft's prior values; the add path leaves them zero for the Organizer's
// defaults (start=now, end=start+1h).
func (v *meetingFormValues) apply(m *domain.Meeting) {
	m.Title = strings.TrimSpace(v.Title)
	m.Location = strings.TrimSpace(v.Location)
	m.Booth = strings.TrimSpace(v.Booth)
	m.Description = v.Description
	m.TalkingPoints = v.TalkingPoints
	m.PrepChecklist = v.PrepChecklist
	m.Start = parseOptionalDateTime(v.Start, m.Start)
	m.End = parseOptionalDateTime(v.End, m.End)
}

// meetingForm builds the modal form for adding or editing a meeting.
func meetingForm(v *meetingFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&v.Title).Validate(validateRequired),
			huh.NewInput().Title("Location").Value(&v.Location),
			huh.NewInput().Title("Booth").Value(&v.Booth),
			huh.NewInput().Title("Start (blank = now)").Placeholder(dateTimeLayout).Value(&v.Start).Validate(validateOptionalDateTime),
			huh.NewInput().Title("End (blank = start + 1h)").Placeholder(dateTimeLayout).Value(&v.End).Validate(validateOptionalDateTime),
		),
		huh.NewGroup(
			huh.NewText().Title("Description / goals").Value(&v.Description),
			huh.NewText().Title("Suggested talking points").Value(&v.TalkingPoints),
			huh.NewText().Title("Prep checklist").Value(&v.PrepChecklist),
		),
	).WithTheme(showdeckHuhTheme()).WithShowHelp(false)
}

// ── travel form ──────────────────────────────────────────────────────────────

type travelFormValues struct {
	Type         string
	Label        string
	Confirmation string
	Start        string
	End          string
	Details      string
}

func newTravelFormValues(t *domain.TravelItem) *travelFormValues {
	typ := string(t.Type)
	if typ == "" {
		typ = string(domain.TravelFlight)
	}
	return &travelFormValues{
		Type:         typ,
		Label:        t.Label,
		Confirmation: t.Confirmation,
		Start:        formatOptionalInstant(t.Start),
		End:          formatOptionalInstant(t.End),
		Details:      t.Details,
	}
}

// apply copies the bindings back onto the draft. Blank instants clear the
// optional fields.
func (v *travelFormValues) apply(t *domain.TravelItem) {
	t.Type = domain.TravelType(v.Type)
	t.Label = strings.TrimSpace(v.Label)
	t.Confirmation = strings.TrimSpace(v.Confirmation)
	t.Details = v.Details
	t.Start = nil
	t.End = nil
	if s := strings.TrimSpace(v.Start); s != "" {
		if parsed, err := time.ParseInLocation(dateTimeLayout, s, time.Local); err == nil {
			t.Start = &parsed
		}
	}
	if s := strings.TrimSpace(v.End); s != "" {
		if parsed, err := time.ParseInLocation(dateTimeLayout, s, time.Local); err == nil {
			t.End = &parsed
		}
	}
}

func travelForm(v *travelFormValues) *huh.Form {
	options := make([]huh.Option[string], 0, len(domain.TravelTypes))
	for _, tt := range domain.TravelTypes {
		options = append(options, huh.NewOption(string(tt), string(tt)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Type").Options(options...).Value(&v.Type),
			huh.NewInput().Title("Label").Value(&v.Label).Validate(validateRequired),
			huh.NewInput().Title("Confirmation #").Value(&v.Confirmation),
			huh.NewInput().Title("Start (optional)").Placeholder(dateTimeLayout).Value(&v.Start).Validate(validateOptionalDateTime),
			huh.NewInput().Title("End (optional)").Placeholder(dateTimeLayout).Value(&v.End).Validate(validateOptionalDateTime),
			huh.NewText().Title("Details").Value(&v.Details),
		),
	).WithTheme(showdeckHuhTheme()).WithShowHelp(false)
}

// ── attendee form ────────────────────────────────────────────────────────────

type attendeeFormValues struct {
	Name       string
	Title      string
	Company    string
	ProfileURL string
	PhotoURL   string
	Notes      string
}

func newAttendeeFormValues(a domain.Attendee) *attendeeFormValues {
	return &attendeeFormValues{
		Name:       a.Name,
		Title:      a.Title,
		Company:    a.Company,
		ProfileURL: a.ProfileURL,
		PhotoURL:   a.PhotoURL,
		Notes:      a.Notes,
	}
}

func (v *attendeeFormValues) apply(a *domain.Attendee) {
	a.Name = strings.TrimSpace(v.Name)
	a.Title = strings.TrimSpace(v.Title)
	a.Company = strings.TrimSpace(v.Company)
	a.ProfileURL = strings.TrimSpace(v.ProfileURL)
	a.PhotoURL = strings.TrimSpace(v.PhotoURL)
	a.Notes = v.Notes
}

func attendeeForm(v *attendeeFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&v.Name),
			huh.NewInput().Title("Title").Value(&v.Title),
			huh.NewInput().Title("Company").Value(&v.Company),
			huh.NewInput().Title("Profile URL").Value(&v.ProfileURL),
			huh.NewInput().Title("Photo URL").Value(&v.PhotoURL),
			huh.NewText().Title("Notes").Value(&v.Notes),
		),
	).WithTheme(showdeckHuhTheme()).WithShowHelp(false)
}

// ── single-input forms ───────────────────────────────────────────────────────

// linkForm collects the assistant link URL. Blank clears the link.
func linkForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Assistant URL (blank to clear)").
				Placeholder("https://...").
				Value(value),
		),
	).WithTheme(showdeckHuhTheme()).WithShowHelp(false)
}

// pathForm collects a file path for import or export.
func pathForm(title string, value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(value).
				Validate(validateRequired),
		),
	).WithTheme(showdeckHuhTheme()).WithShowHelp(false)
}
