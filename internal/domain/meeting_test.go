package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 9, 16, 9, 0, 0, 0, time.UTC)

func TestMeetingClone_Independent(t *testing.T) {
	m := &Meeting{
		ID:        "m1",
		Title:     "Booth demo",
		Start:     testNow,
		End:       testNow.Add(time.Hour),
		Attendees: []Attendee{{ID: "a1", Name: "Chris"}},
	}
	draft := m.Clone()
	draft.Title = "Renamed"
	draft.Attendees[0].Name = "Someone Else"
	draft.Attendees = append(draft.Attendees, Attendee{ID: "a2", Name: "New"})

	assert.Equal(t, "Booth demo", m.Title, "original title untouched")
	assert.Equal(t, "Chris", m.Attendees[0].Name, "original attendee untouched")
	assert.Len(t, m.Attendees, 1)
}

func TestMeetingValidate(t *testing.T) {
	cases := []struct {
		name    string
		meeting Meeting
		wantErr bool
	}{
		{"valid", Meeting{Title: "Intro", Start: testNow, End: testNow.Add(time.Hour)}, false},
		{"empty title", Meeting{Start: testNow, End: testNow.Add(time.Hour)}, true},
		{"end before start", Meeting{Title: "Intro", Start: testNow, End: testNow.Add(-time.Minute)}, true},
		{"zero-length allowed", Meeting{Title: "Intro", Start: testNow, End: testNow}, false},
	}
	for _, tc := range cases {
		err := tc.meeting.Validate()
		if tc.wantErr {
			assert.Error(t, err, tc.name)
		} else {
			assert.NoError(t, err, tc.name)
		}
	}
}

func TestMeetingOccupies_HalfOpen(t *testing.T) {
	m := &Meeting{Start: testNow, End: testNow.Add(time.Hour)} // 09:00–10:00
	assert.True(t, m.Occupies(testNow), "slot at start is occupied")
	assert.True(t, m.Occupies(testNow.Add(30*time.Minute)))
	assert.False(t, m.Occupies(testNow.Add(time.Hour)), "slot at end is not occupied")
	assert.False(t, m.Occupies(testNow.Add(-time.Hour)))
}

func TestMeetingRemoveAttendee(t *testing.T) {
	m := &Meeting{Attendees: []Attendee{{ID: "a1"}, {ID: "a2"}, {ID: "a3"}}}
	require.True(t, m.RemoveAttendee("a2"))
	assert.Len(t, m.Attendees, 2)
	assert.Equal(t, "a1", m.Attendees[0].ID)
	assert.Equal(t, "a3", m.Attendees[1].ID)
	assert.False(t, m.RemoveAttendee("a2"), "already removed")
}

func TestAttendeeInitial(t *testing.T) {
	assert.Equal(t, "C", Attendee{Name: "chris"}.Initial())
	assert.Equal(t, "A", Attendee{Name: "Amanda Lee"}.Initial())
	assert.Equal(t, "?", Attendee{}.Initial())
	assert.Equal(t, "?", Attendee{Name: "   "}.Initial())
}

func TestTravelValidate(t *testing.T) {
	start := testNow
	end := testNow.Add(2 * time.Hour)
	before := testNow.Add(-time.Hour)

	valid := TravelItem{Type: TravelFlight, Label: "ATL → BOS", Start: &start, End: &end}
	assert.NoError(t, valid.Validate())

	noTimes := TravelItem{Type: TravelHotel, Label: "Westin"}
	assert.NoError(t, noTimes.Validate(), "instants are optional")

	badType := TravelItem{Type: TravelType("boat"), Label: "Ferry"}
	assert.Error(t, badType.Validate())

	inverted := TravelItem{Type: TravelGround, Label: "Shuttle", Start: &start, End: &before}
	assert.Error(t, inverted.Validate())
}

func TestTravelClone_Independent(t *testing.T) {
	start := testNow
	item := &TravelItem{ID: "t1", Type: TravelFlight, Label: "Flight", Start: &start}
	draft := item.Clone()
	*draft.Start = testNow.Add(time.Hour)
	draft.Label = "Changed"

	assert.Equal(t, testNow, *item.Start, "original start untouched")
	assert.Equal(t, "Flight", item.Label)
}
