package cli

import (
	"testing"

	"github.com/alexanderramin/showdeck/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModalView_EscCancelsWithoutCommit(t *testing.T) {
	state := NewSharedState(testApp(t).Organizer)
	committed := false
	v := newModalView(state, "Add meeting", meetingForm(&meetingFormValues{}), func() tea.Cmd {
		committed = true
		return nil
	})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	done, ok := cmd().(modalDoneMsg)
	require.True(t, ok)
	require.NotNil(t, done.nextCmd)
	assert.False(t, committed, "escape must not run the commit callback")
}

func TestModalView_Metadata(t *testing.T) {
	state := NewSharedState(testApp(t).Organizer)
	v := newModalView(state, "Edit travel", travelForm(&travelFormValues{}), nil)

	assert.Equal(t, ViewModal, v.ID())
	assert.Equal(t, "Edit travel", v.Title())
	assert.NotEmpty(t, v.ShortHelp())
}

func TestMeetingFormValues_RoundTrip(t *testing.T) {
	app := testApp(t)
	src := app.Organizer.State().Meetings[0]

	vals := newMeetingFormValues(src)
	assert.Equal(t, src.Title, vals.Title)
	assert.NotEmpty(t, vals.Start)

	vals.Title = "  Renamed  "
	vals.Booth = "Z999"
	draft := src.Clone()
	vals.apply(draft)

	assert.Equal(t, "Renamed", draft.Title)
	assert.Equal(t, "Z999", draft.Booth)
	assert.True(t, draft.Start.Equal(src.Start), "unchanged instant survives the round trip")
}

func TestMeetingFormValues_BlankInstantsStayZeroOnAdd(t *testing.T) {
	vals := &meetingFormValues{Title: "Quick sync"}
	m := &domain.Meeting{}
	vals.apply(m)
	assert.True(t, m.Start.IsZero())
	assert.True(t, m.End.IsZero())
}

func TestTravelFormValues_ClearsOptionalInstants(t *testing.T) {
	app := testApp(t)
	src := app.Organizer.State().Travel[0]
	require.NotNil(t, src.Start)

	vals := newTravelFormValues(src)
	vals.Start = ""
	vals.End = ""

	draft := src.Clone()
	vals.apply(draft)
	assert.Nil(t, draft.Start)
	assert.Nil(t, draft.End)
}

func TestValidateOptionalDateTime(t *testing.T) {
	assert.NoError(t, validateOptionalDateTime(""))
	assert.NoError(t, validateOptionalDateTime("  "))
	assert.NoError(t, validateOptionalDateTime("2025-09-16 09:00"))
	assert.Error(t, validateOptionalDateTime("09:00 2025-09-16"))
	assert.Error(t, validateOptionalDateTime("tomorrow"))
}
