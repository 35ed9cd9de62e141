package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/showdeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records saves so tests can assert persistence happened without
// a real database.
type fakeStore struct {
	loaded   *domain.State
	saved    []*domain.State
	saveErr  error
	pushed   int
}

func (f *fakeStore) Load(context.Context) *domain.State {
	if f.loaded != nil {
		return f.loaded
	}
	return domain.NewState()
}

func (f *fakeStore) Save(_ context.Context, s *domain.State) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, s.Clone())
	return nil
}

func (f *fakeStore) Push(context.Context, *domain.State) { f.pushed++ }

func newTestOrganizer(t *testing.T, initial *domain.State) (*Organizer, *fakeStore) {
	t.Helper()
	fs := &fakeStore{loaded: initial}
	o := NewOrganizer(context.Background(), fs, fs)
	o.now = func() time.Time { return at(10) }
	return o, fs
}

func TestAddMeeting_EmptyTitleRejected(t *testing.T) {
	o, fs := newTestOrganizer(t, domain.NewState())
	err := o.AddMeeting(context.Background(), &domain.Meeting{Start: at(9), End: at(10)})
	require.Error(t, err)
	assert.Empty(t, o.State().Meetings, "nothing added")
	assert.Empty(t, fs.saved, "nothing persisted")
}

func TestAddMeeting_DefaultsAndPersists(t *testing.T) {
	o, fs := newTestOrganizer(t, domain.NewState())
	m := &domain.Meeting{Title: "Booth intro"}
	require.NoError(t, o.AddMeeting(context.Background(), m))

	require.Len(t, o.State().Meetings, 1)
	got := o.State().Meetings[0]
	assert.NotEmpty(t, got.ID)
	assert.True(t, got.Start.Equal(at(10)), "blank start defaults to now")
	assert.True(t, got.End.Equal(at(11)), "blank end defaults to start+1h")
	assert.NotNil(t, got.Attendees)
	require.Len(t, fs.saved, 1)
	assert.Equal(t, 1, fs.pushed, "mirrored once")
}

func TestCommitMeeting_DraftReplacesByID(t *testing.T) {
	initial := domain.NewState()
	orig := &domain.Meeting{ID: "m1", Title: "Original", Start: at(9), End: at(10)}
	other := &domain.Meeting{ID: "m2", Title: "Other", Start: at(11), End: at(12)}
	initial.Meetings = []*domain.Meeting{orig, other}
	o, _ := newTestOrganizer(t, initial)

	draft := orig.Clone()
	draft.Title = "Edited"
	draft.Attendees = append(draft.Attendees, domain.Attendee{ID: "a1", Name: "Chris"})

	// Until commit, the stored record is untouched.
	assert.Equal(t, "Original", o.State().Meetings[0].Title)

	require.NoError(t, o.CommitMeeting(context.Background(), draft))
	assert.Equal(t, "Edited", o.State().Meetings[0].Title)
	assert.Len(t, o.State().Meetings[0].Attendees, 1)
	assert.Equal(t, "Other", o.State().Meetings[1].Title, "matched by ID, not position")
}

func TestCommitMeeting_InvalidDraftLeavesStateAlone(t *testing.T) {
	initial := domain.NewState()
	initial.Meetings = []*domain.Meeting{{ID: "m1", Title: "Original", Start: at(9), End: at(10)}}
	o, fs := newTestOrganizer(t, initial)

	draft := initial.Meetings[0].Clone()
	draft.End = draft.Start.Add(-time.Hour)
	require.Error(t, o.CommitMeeting(context.Background(), draft))
	assert.Equal(t, "Original", o.State().Meetings[0].Title)
	assert.True(t, o.State().Meetings[0].End.Equal(at(10)))
	assert.Empty(t, fs.saved)
}

func TestCommitMeeting_UnknownID(t *testing.T) {
	o, _ := newTestOrganizer(t, domain.NewState())
	err := o.CommitMeeting(context.Background(), &domain.Meeting{ID: "ghost", Title: "x", Start: at(9), End: at(10)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMeeting_RemovesExactlyOne(t *testing.T) {
	initial := domain.NewState()
	initial.Meetings = []*domain.Meeting{
		{ID: "m1", Title: "One", Start: at(9), End: at(10)},
		{ID: "m2", Title: "Two", Start: at(11), End: at(12)},
		{ID: "m3", Title: "Three", Start: at(13), End: at(14)},
	}
	initial.Travel = []*domain.TravelItem{{ID: "t1", Type: domain.TravelFlight, Label: "Out"}}
	o, _ := newTestOrganizer(t, initial)

	require.NoError(t, o.DeleteMeeting(context.Background(), "m2"))
	require.Len(t, o.State().Meetings, 2)
	assert.Equal(t, "m1", o.State().Meetings[0].ID)
	assert.Equal(t, "m3", o.State().Meetings[1].ID)
	assert.Len(t, o.State().Travel, 1, "travel untouched")

	assert.ErrorIs(t, o.DeleteMeeting(context.Background(), "m2"), ErrNotFound)
}

func TestTravelLifecycle(t *testing.T) {
	o, _ := newTestOrganizer(t, domain.NewState())
	ctx := context.Background()

	item := &domain.TravelItem{Type: domain.TravelFlight, Label: "ATL → BOS"}
	require.NoError(t, o.AddTravel(ctx, item))
	require.Len(t, o.State().Travel, 1)
	require.NotEmpty(t, item.ID)

	draft := item.Clone()
	draft.Confirmation = "Z7X9QW"
	require.NoError(t, o.CommitTravel(ctx, draft))
	assert.Equal(t, "Z7X9QW", o.State().Travel[0].Confirmation)

	bad := item.Clone()
	bad.Type = domain.TravelType("teleport")
	require.Error(t, o.CommitTravel(ctx, bad))

	require.NoError(t, o.DeleteTravel(ctx, item.ID))
	assert.Empty(t, o.State().Travel)
}

func TestSetAssistantURL_Trims(t *testing.T) {
	o, fs := newTestOrganizer(t, domain.NewState())
	o.SetAssistantURL(context.Background(), "  https://example.com/assistant  ")
	assert.Equal(t, "https://example.com/assistant", o.State().AssistantURL)
	require.Len(t, fs.saved, 1)

	o.SetAssistantURL(context.Background(), "   ")
	assert.Empty(t, o.State().AssistantURL, "cleared link stored as empty string")
}

func TestPersist_SaveFailureSwallowed(t *testing.T) {
	o, fs := newTestOrganizer(t, domain.NewState())
	fs.saveErr = errors.New("disk full")

	require.NoError(t, o.AddMeeting(context.Background(), &domain.Meeting{Title: "Still added"}))
	assert.Len(t, o.State().Meetings, 1, "mutation applies even when the save fails")
	assert.Equal(t, 1, fs.pushed, "mirroring still attempted")
}
