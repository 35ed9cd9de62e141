package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/showdeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportableState() *domain.State {
	hotelStart := at(8)
	return &domain.State{
		Meetings: []*domain.Meeting{
			{
				ID:        "m1",
				Title:     "NorthBridge intro",
				Location:  "Hall B",
				Booth:     "B122",
				Start:     at(9),
				End:       at(10),
				Attendees: []domain.Attendee{{ID: "a1", Name: "Chris", Company: "NorthBridge"}},
			},
		},
		Travel: []*domain.TravelItem{
			{ID: "t1", Type: domain.TravelHotel, Label: "Westin", Start: &hotelStart},
		},
		AssistantURL: "https://example.com/assistant",
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	source, _ := newTestOrganizer(t, exportableState())
	data, err := source.Export()
	require.NoError(t, err)

	dest, _ := newTestOrganizer(t, domain.NewState())
	require.NoError(t, dest.Import(context.Background(), data))

	got := dest.State()
	require.Len(t, got.Meetings, 1)
	assert.Equal(t, "m1", got.Meetings[0].ID)
	assert.Equal(t, "NorthBridge intro", got.Meetings[0].Title)
	assert.True(t, got.Meetings[0].Start.Equal(at(9)))
	assert.Equal(t, source.State().Meetings[0].Attendees, got.Meetings[0].Attendees)
	require.Len(t, got.Travel, 1)
	assert.Equal(t, domain.TravelHotel, got.Travel[0].Type)
	assert.Equal(t, "https://example.com/assistant", got.AssistantURL)
}

func TestImport_PartialDocumentLeavesAbsentFields(t *testing.T) {
	o, _ := newTestOrganizer(t, exportableState())

	partial := []byte(`{
		"meetings": [
			{"id": "new1", "title": "Imported", "start": "2025-09-17T09:00:00Z", "end": "2025-09-17T10:00:00Z"}
		],
		"externalLink": "https://other.example.com"
	}`)
	require.NoError(t, o.Import(context.Background(), partial))

	got := o.State()
	require.Len(t, got.Meetings, 1)
	assert.Equal(t, "new1", got.Meetings[0].ID, "meetings replaced")
	assert.Equal(t, "https://other.example.com", got.AssistantURL, "link replaced")
	require.Len(t, got.Travel, 1)
	assert.Equal(t, "t1", got.Travel[0].ID, "absent travel field untouched")
}

func TestImport_UnrecognizedFieldsIgnored(t *testing.T) {
	o, _ := newTestOrganizer(t, domain.NewState())
	doc := []byte(`{"externalLink": "https://x.example.com", "somethingElse": {"a": 1}}`)
	require.NoError(t, o.Import(context.Background(), doc))
	assert.Equal(t, "https://x.example.com", o.State().AssistantURL)
}

func TestImport_MalformedLeavesStateUnchanged(t *testing.T) {
	o, fs := newTestOrganizer(t, exportableState())
	err := o.Import(context.Background(), []byte(`{"meetings": [`))
	require.Error(t, err)
	assert.Len(t, o.State().Meetings, 1)
	assert.Equal(t, "m1", o.State().Meetings[0].ID)
	assert.Empty(t, fs.saved, "no persist on failed import")
}

func TestImport_ClearsFieldsWithEmptyValues(t *testing.T) {
	o, _ := newTestOrganizer(t, exportableState())
	require.NoError(t, o.Import(context.Background(), []byte(`{"meetings": [], "externalLink": ""}`)))
	assert.Empty(t, o.State().Meetings)
	assert.Empty(t, o.State().AssistantURL)
	assert.Len(t, o.State().Travel, 1)
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2025, 9, 16, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, "showdeck-data-2025-09-16.json", ExportFileName(now))
}
