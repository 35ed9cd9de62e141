// Package schedule holds the application service for the trip: CRUD on the
// aggregate state with draft-commit semantics, import/export, and the pure
// projections the views are rendered from.
package schedule

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/alexanderramin/showdeck/internal/domain"
)

var (
	// ErrNotFound is returned when a commit or delete names an unknown ID.
	ErrNotFound = errors.New("record not found")
)

// Store loads and saves the aggregate state snapshot.
type Store interface {
	Load(ctx context.Context) *domain.State
	Save(ctx context.Context, state *domain.State) error
}

// Mirrorer pushes the state to the remote document store. Pushes must not
// block.
type Mirrorer interface {
	Push(ctx context.Context, state *domain.State)
}

// Organizer owns the single live State instance and applies every
// mutation: validate, mutate, persist locally, mirror remotely. The local
// save is synchronous and best effort (failures are logged, not
// surfaced); mirroring is fire and forget.
type Organizer struct {
	state  *domain.State
	store  Store
	mirror Mirrorer
	now    func() time.Time
}

// NewOrganizer loads the saved state (or the seed) and wires persistence.
// mirror may be nil when sync is not configured.
func NewOrganizer(ctx context.Context, store Store, mirror Mirrorer) *Organizer {
	return &Organizer{
		state:  store.Load(ctx),
		store:  store,
		mirror: mirror,
		now:    time.Now,
	}
}

// State exposes the live aggregate for rendering and for the sync
// listener. Callers borrow it; they must not keep diverging copies.
func (o *Organizer) State() *domain.State {
	return o.state
}

// AddMeeting validates and appends a new meeting. Defaults: a blank start
// becomes now, a blank end becomes start plus one hour, and a missing ID
// is generated.
func (o *Organizer) AddMeeting(ctx context.Context, m *domain.Meeting) error {
	if m.ID == "" {
		m.ID = domain.NewID()
	}
	if m.Start.IsZero() {
		m.Start = o.now()
	}
	if m.End.IsZero() {
		m.End = m.Start.Add(time.Hour)
	}
	if m.Attendees == nil {
		m.Attendees = []domain.Attendee{}
	}
	if err := m.Validate(); err != nil {
		return err
	}
	o.state.Meetings = append(o.state.Meetings, m)
	o.persist(ctx)
	return nil
}

// CommitMeeting validates an edited draft and atomically replaces the
// stored meeting with the same ID. The draft must be a deep copy; the
// original record is untouched until this call succeeds.
func (o *Organizer) CommitMeeting(ctx context.Context, draft *domain.Meeting) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	if !o.state.ReplaceMeeting(draft) {
		return ErrNotFound
	}
	o.persist(ctx)
	return nil
}

// DeleteMeeting removes the meeting with the given ID. No confirmation,
// no undo.
func (o *Organizer) DeleteMeeting(ctx context.Context, id string) error {
	if !o.state.RemoveMeeting(id) {
		return ErrNotFound
	}
	o.persist(ctx)
	return nil
}

// AddTravel validates and appends a new travel item.
func (o *Organizer) AddTravel(ctx context.Context, t *domain.TravelItem) error {
	if t.ID == "" {
		t.ID = domain.NewID()
	}
	if err := t.Validate(); err != nil {
		return err
	}
	o.state.Travel = append(o.state.Travel, t)
	o.persist(ctx)
	return nil
}

// CommitTravel validates an edited draft and replaces the stored item with
// the same ID.
func (o *Organizer) CommitTravel(ctx context.Context, draft *domain.TravelItem) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	if !o.state.ReplaceTravel(draft) {
		return ErrNotFound
	}
	o.persist(ctx)
	return nil
}

// DeleteTravel removes the travel item with the given ID.
func (o *Organizer) DeleteTravel(ctx context.Context, id string) error {
	if !o.state.RemoveTravel(id) {
		return ErrNotFound
	}
	o.persist(ctx)
	return nil
}

// SetAssistantURL stores the trimmed assistant link. An empty string
// clears it.
func (o *Organizer) SetAssistantURL(ctx context.Context, url string) {
	o.state.AssistantURL = strings.TrimSpace(url)
	o.persist(ctx)
}

// Persist saves locally and mirrors remotely. Exposed for handlers that
// mutate the state directly (the attendee sub-editor commits through
// CommitMeeting, so normally only the Organizer itself calls this).
func (o *Organizer) Persist(ctx context.Context) {
	o.persist(ctx)
}

func (o *Organizer) persist(ctx context.Context) {
	if err := o.store.Save(ctx, o.state); err != nil {
		slog.Warn("saving state failed", "error", err)
	}
	if o.mirror != nil {
		o.mirror.Push(ctx, o.state)
	}
}
