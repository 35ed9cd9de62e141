package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/showdeck/internal/domain"
	"github.com/alexanderramin/showdeck/internal/schedule"
	"github.com/stretchr/testify/assert"
)

var day = time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC)

func TestFormatAgenda_RowsInOrder(t *testing.T) {
	meetings := schedule.MeetingsOn([]*domain.Meeting{
		{ID: "b", Title: "Second", Start: day.Add(11 * time.Hour), End: day.Add(12 * time.Hour), Location: "Hall A"},
		{ID: "a", Title: "First", Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour), Booth: "B122"},
	}, day)

	out := FormatAgenda(meetings)
	assert.Contains(t, out, "First")
	assert.Contains(t, out, "Second")
	assert.Less(t, strings.Index(out, "First"), strings.Index(out, "Second"))
	assert.Contains(t, out, "Booth B122")
	assert.Contains(t, out, "09:00–10:00")
}

func TestFormatAgenda_Empty(t *testing.T) {
	assert.Contains(t, FormatAgenda(nil), "No meetings for this date.")
}

func TestFormatHourly_MarksOccupiedSlots(t *testing.T) {
	meetings := []*domain.Meeting{
		{ID: "m", Title: "Demo", Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour)},
	}
	out := FormatHourly(schedule.HourSlots(meetings, day))

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, schedule.HourlySlotCount)
	assert.Contains(t, lines[0], "07:00")

	var nineLine, tenLine string
	for _, l := range lines {
		plain := stripANSI(l)
		if strings.HasPrefix(plain, "09:00") {
			nineLine = plain
		}
		if strings.HasPrefix(plain, "10:00") {
			tenLine = plain
		}
	}
	assert.Contains(t, nineLine, "Demo")
	assert.NotContains(t, tenLine, "Demo", "half-open interval: 10:00 slot empty")
}

func TestFormatDetails_CardContents(t *testing.T) {
	m := &domain.Meeting{
		ID:            "m1",
		Title:         "NorthBridge intro",
		Start:         day.Add(9 * time.Hour),
		End:           day.Add(10*time.Hour + 30*time.Minute),
		Location:      "Hall B",
		TalkingPoints: "co-selling playbook",
		PrepChecklist: "confirm NDA status",
		Attendees:     []domain.Attendee{{Name: "chris", Title: "VP", Company: "NorthBridge"}, {Name: ""}},
	}
	out := FormatDetails([]*domain.Meeting{m})

	assert.Contains(t, out, "NORTHBRIDGE INTRO")
	assert.Contains(t, out, "1.5 hrs")
	assert.Contains(t, out, "co-selling playbook")
	assert.Contains(t, out, "confirm NDA status")
	assert.Contains(t, out, "(C)", "initial avatar uppercased")
	assert.Contains(t, out, "(?)", "empty name gets placeholder avatar")
	assert.Contains(t, out, "VP • NorthBridge")
}

func TestFormatDetails_Empty(t *testing.T) {
	out := FormatDetails(nil)
	assert.Contains(t, out, "NO MEETINGS THIS DAY", "box title is uppercased")
	assert.Contains(t, out, "Add one with 'a'.")
}

func TestFormatTravel(t *testing.T) {
	start := day.Add(8 * time.Hour)
	items := []*domain.TravelItem{
		{Type: domain.TravelFlight, Label: "ATL → BOS", Confirmation: "Z7X9QW", Start: &start, Details: "Seat 14C"},
		{Type: domain.TravelHotel, Label: "Westin"},
	}
	out := FormatTravel(items)
	assert.Contains(t, out, "[FLIGHT]")
	assert.Contains(t, out, "[HOTEL]")
	assert.Contains(t, out, "Conf# Z7X9QW")
	assert.Contains(t, out, "Seat 14C")
	assert.NotContains(t, out, "End", "absent end instant not rendered")

	assert.Contains(t, FormatTravel(nil), "No travel saved.")
}

func TestFormatAssistantBanner(t *testing.T) {
	banner := FormatAssistantBanner("")
	assert.Contains(t, banner, "No assistant link configured")
	assert.Contains(t, banner, "Press 'g'")
	assert.Empty(t, FormatAssistantBanner("https://example.com"))
}

// stripANSI removes color escape sequences for positional assertions.
func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case inEsc:
			if r == 'm' {
				inEsc = false
			}
		case r == '\x1b':
			inEsc = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
