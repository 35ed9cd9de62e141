package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/showdeck/internal/domain"
)

// Document is the import/export file format. On import, pointer fields
// distinguish "absent" from "present but empty": absent fields leave the
// corresponding state untouched. Unrecognized fields are ignored.
type Document struct {
	Meetings     *[]*domain.Meeting    `json:"meetings,omitempty"`
	Travel       *[]*domain.TravelItem `json:"travel,omitempty"`
	AssistantURL *string               `json:"externalLink,omitempty"`
}

// ExportFileName returns the default export filename for the given date,
// e.g. "showdeck-data-2025-09-16.json".
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("showdeck-data-%s.json", now.Format("2006-01-02"))
}

// Export serializes the full state as a pretty-printed document.
func (o *Organizer) Export() ([]byte, error) {
	doc := Document{
		Meetings:     &o.state.Meetings,
		Travel:       &o.state.Travel,
		AssistantURL: &o.state.AssistantURL,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export: %w", err)
	}
	return data, nil
}

// Import parses a document and replaces whichever of the three fields it
// contains. A malformed document is an error and leaves the state
// unchanged.
func (o *Organizer) Import(ctx context.Context, data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}

	if doc.Meetings != nil {
		meetings := *doc.Meetings
		if meetings == nil {
			meetings = []*domain.Meeting{}
		}
		o.state.Meetings = meetings
	}
	if doc.Travel != nil {
		travel := *doc.Travel
		if travel == nil {
			travel = []*domain.TravelItem{}
		}
		o.state.Travel = travel
	}
	if doc.AssistantURL != nil {
		o.state.AssistantURL = *doc.AssistantURL
	}

	o.persist(ctx)
	return nil
}
