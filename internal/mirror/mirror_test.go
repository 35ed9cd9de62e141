package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/showdeck/internal/domain"
	"github.com/alexanderramin/showdeck/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2025, 9, 16, 9, 0, 0, 0, time.UTC)

func localState() *domain.State {
	return &domain.State{
		Meetings: []*domain.Meeting{
			{ID: "m1", Title: "Local meeting", Start: day, End: day.Add(time.Hour)},
		},
		Travel:       []*domain.TravelItem{},
		AssistantURL: "",
	}
}

func TestPush_MirrorsAllThreeFields(t *testing.T) {
	docs := remote.NewMemoryStore()
	m := NewMirror(docs)
	state := localState()
	state.AssistantURL = "https://example.com"

	m.Push(context.Background(), state)
	m.Wait()

	raw, ok, err := docs.Get(context.Background(), remote.KeyMeetings)
	require.NoError(t, err)
	require.True(t, ok)
	var meetings []*domain.Meeting
	require.NoError(t, json.Unmarshal(raw, &meetings))
	require.Len(t, meetings, 1)
	assert.Equal(t, "m1", meetings[0].ID)

	raw, ok, err = docs.Get(context.Background(), remote.KeyAssistantURL)
	require.NoError(t, err)
	require.True(t, ok)
	var url string
	require.NoError(t, json.Unmarshal(raw, &url))
	assert.Equal(t, "https://example.com", url)

	_, ok, err = docs.Get(context.Background(), remote.KeyTravel)
	require.NoError(t, err)
	assert.True(t, ok, "empty travel list still mirrored")
}

type failingStore struct {
	remote.NopStore
}

func (failingStore) Set(context.Context, string, any, bool) error {
	return errors.New("remote unavailable")
}

func TestPush_FailureReportedNotFatal(t *testing.T) {
	m := NewMirror(failingStore{})
	m.Push(context.Background(), localState())
	m.Wait()

	failed := 0
	for i := 0; i < 3; i++ {
		r := <-m.Results()
		require.Error(t, r.Err)
		failed++
	}
	assert.Equal(t, 3, failed)
}

func TestHydrate_AdoptsDifferingRemoteValues(t *testing.T) {
	docs := remote.NewMemoryStore()
	ctx := context.Background()

	remoteMeetings := []*domain.Meeting{
		{ID: "r1", Title: "Remote meeting", Start: day.Add(time.Hour), End: day.Add(2 * time.Hour), Attendees: []domain.Attendee{}},
	}
	require.NoError(t, docs.Set(ctx, remote.KeyMeetings, remoteMeetings, true))
	require.NoError(t, docs.Set(ctx, remote.KeyAssistantURL, "https://remote.example.com", true))

	state := localState()
	l := NewListener(docs, state, nil)

	assert.True(t, l.Hydrate(ctx))
	require.Len(t, state.Meetings, 1)
	assert.Equal(t, "r1", state.Meetings[0].ID, "remote value is authoritative")
	assert.Equal(t, "https://remote.example.com", state.AssistantURL)
	assert.Empty(t, state.Travel, "absent remote doc leaves local field alone")
}

func TestHydrate_EqualValuesReportNoChange(t *testing.T) {
	docs := remote.NewMemoryStore()
	ctx := context.Background()
	state := localState()

	require.NoError(t, docs.Set(ctx, remote.KeyMeetings, state.Meetings, true))
	require.NoError(t, docs.Set(ctx, remote.KeyTravel, state.Travel, true))
	require.NoError(t, docs.Set(ctx, remote.KeyAssistantURL, state.AssistantURL, true))

	l := NewListener(docs, state, nil)
	assert.False(t, l.Hydrate(ctx))
	assert.Equal(t, "m1", state.Meetings[0].ID)
}

func TestSubscription_OverwritesLocalField(t *testing.T) {
	docs := remote.NewMemoryStore()
	ctx := context.Background()
	state := localState()

	var mu sync.Mutex
	renders := 0
	l := NewListener(docs, state, func() {
		mu.Lock()
		renders++
		mu.Unlock()
	})
	require.NoError(t, l.Start())
	defer l.Stop()

	// A remote writer replaces the meetings field while a local "draft"
	// exists. The remote value wins outright.
	replacement := []*domain.Meeting{
		{ID: "r9", Title: "Overwritten", Start: day, End: day.Add(time.Hour), Attendees: []domain.Attendee{}},
	}
	require.NoError(t, docs.Set(ctx, remote.KeyMeetings, replacement, true))

	require.Len(t, state.Meetings, 1)
	assert.Equal(t, "r9", state.Meetings[0].ID)
	mu.Lock()
	assert.Equal(t, 1, renders)
	mu.Unlock()
}

func TestSubscription_StopEndsUpdates(t *testing.T) {
	docs := remote.NewMemoryStore()
	ctx := context.Background()
	state := localState()

	l := NewListener(docs, state, nil)
	require.NoError(t, l.Start())
	l.Stop()

	require.NoError(t, docs.Set(ctx, remote.KeyAssistantURL, "late", true))
	assert.Empty(t, state.AssistantURL)
}
