package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/showdeck/internal/domain"
	"github.com/alexanderramin/showdeck/internal/schedule"
	"github.com/alexanderramin/showdeck/internal/timeutil"
)

// FormatAgenda renders the agenda panel: one row per same-day meeting with
// time range, title, location and booth. meetings must already be the
// same-day sorted slice from schedule.MeetingsOn.
func FormatAgenda(meetings []*domain.Meeting) string {
	if len(meetings) == 0 {
		return Dim("No meetings for this date.")
	}

	var b strings.Builder
	for i, m := range meetings {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s  %s\n",
			StyleBlue.Render(timeutil.FormatRange(m.Start, m.End)),
			Bold(m.Title)))

		meta := joinNonEmpty(" • ", m.Location, boothLabel(m.Booth))
		if meta != "" {
			b.WriteString("       " + Dim(meta) + "\n")
		}
	}
	return b.String()
}

// FormatHourly renders the hourly grid: one row per slot, with the
// meetings occupying that slot.
func FormatHourly(slots []schedule.HourSlot) string {
	var b strings.Builder
	for _, slot := range slots {
		b.WriteString(StyleDim.Render(timeutil.FormatTime(slot.Time)) + "  ")
		if len(slot.Meetings) == 0 {
			b.WriteString(Dim("·"))
		} else {
			tags := make([]string, 0, len(slot.Meetings))
			for _, m := range slot.Meetings {
				tags = append(tags, fmt.Sprintf("%s %s",
					Bold(m.Title),
					Dim(timeutil.FormatRange(m.Start, m.End))))
			}
			b.WriteString(strings.Join(tags, "   "))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatDetails renders one expandable card per same-day meeting: duration,
// location, description, talking points, prep checklist and attendees.
func FormatDetails(meetings []*domain.Meeting) string {
	if len(meetings) == 0 {
		return RenderBox("No meetings this day", "Add one with 'a'.")
	}

	cards := make([]string, 0, len(meetings))
	for _, m := range meetings {
		cards = append(cards, formatDetailCard(m))
	}
	return strings.Join(cards, "\n")
}

func formatDetailCard(m *domain.Meeting) string {
	var b strings.Builder

	b.WriteString(Dim(fmt.Sprintf("%s • %s", timeutil.FormatDate(m.Start), timeutil.FormatRange(m.Start, m.End))) + "\n")
	meta := joinNonEmpty(" • ",
		fmt.Sprintf("%.1f hrs", m.DurationHours()),
		m.Location,
		boothLabel(m.Booth))
	b.WriteString(StyleFg.Render(meta) + "\n")

	if m.Description != "" {
		b.WriteString("\n" + StyleFg.Render(m.Description) + "\n")
	}
	if m.TalkingPoints != "" {
		b.WriteString("\n" + StyleHeader.Render("Talking points") + "\n")
		b.WriteString(Dim(m.TalkingPoints) + "\n")
	}
	if m.PrepChecklist != "" {
		b.WriteString("\n" + StyleHeader.Render("Prep checklist") + "\n")
		b.WriteString(Dim(m.PrepChecklist) + "\n")
	}

	b.WriteString("\n" + StyleHeader.Render("Attendees") + "\n")
	if len(m.Attendees) == 0 {
		b.WriteString(Dim("None yet.") + "\n")
	}
	for _, a := range m.Attendees {
		b.WriteString(formatAttendee(a))
	}

	return RenderBox(m.Title, strings.TrimRight(b.String(), "\n"))
}

func formatAttendee(a domain.Attendee) string {
	var b strings.Builder
	avatar := StylePurple.Render("(" + a.Initial() + ")")
	b.WriteString(fmt.Sprintf("%s %s", avatar, Bold(a.Name)))
	if aff := a.Affiliation(); aff != "" {
		b.WriteString("  " + Dim(aff))
	}
	b.WriteString("\n")
	if a.ProfileURL != "" {
		b.WriteString("    " + StyleBlue.Render(a.ProfileURL) + "\n")
	}
	if a.Notes != "" {
		b.WriteString("    " + Dim(a.Notes) + "\n")
	}
	return b.String()
}

// FormatTravel renders all travel items in stored order.
func FormatTravel(items []*domain.TravelItem) string {
	if len(items) == 0 {
		return Dim("No travel saved.")
	}

	var b strings.Builder
	for i, t := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s %s\n",
			StyleYellow.Render("["+strings.ToUpper(string(t.Type))+"]"),
			Bold(t.Label)))

		parts := []string{}
		if t.Confirmation != "" {
			parts = append(parts, "Conf# "+t.Confirmation)
		}
		if t.Start != nil {
			parts = append(parts, "Start "+timeutil.FormatDate(*t.Start)+" "+timeutil.FormatTime(*t.Start))
		}
		if t.End != nil {
			parts = append(parts, "End "+timeutil.FormatDate(*t.End)+" "+timeutil.FormatTime(*t.End))
		}
		if len(parts) > 0 {
			b.WriteString("  " + Dim(strings.Join(parts, " • ")) + "\n")
		}
		if t.Details != "" {
			b.WriteString("  " + StyleFg.Render(t.Details) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatAssistantBanner renders the hint shown while no assistant link is
// configured. Returns "" once a link exists.
func FormatAssistantBanner(url string) string {
	if url != "" {
		return ""
	}
	return StyleYellow.Render("No assistant link configured. Press 'g' to set one.")
}

func boothLabel(booth string) string {
	if booth == "" {
		return ""
	}
	return "Booth " + booth
}
