package mirror

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/alexanderramin/showdeck/internal/domain"
	"github.com/alexanderramin/showdeck/internal/remote"
)

// Listener adopts remote state at startup and keeps adopting it as change
// notifications arrive. The consistency model is last writer wins: a
// notification unconditionally overwrites the corresponding local field,
// even if a local edit is in flight. Callbacks run on the store's
// notification goroutine; onChange is expected to hand off to the UI loop.
type Listener struct {
	docs     remote.DocStore
	state    *domain.State
	onChange func()
	stops    []func()
}

// NewListener creates a Listener over the shared state. onChange fires
// after every adopted remote value and must be safe to call from another
// goroutine.
func NewListener(docs remote.DocStore, state *domain.State, onChange func()) *Listener {
	return &Listener{docs: docs, state: state, onChange: onChange}
}

// Hydrate fetches the current remote values and adopts any that differ
// from local state by value. Returns true when anything changed. Fetch
// errors are logged and skipped; the local value stands.
func (l *Listener) Hydrate(ctx context.Context) bool {
	changed := false
	for _, key := range remote.Keys {
		raw, ok, err := l.docs.Get(ctx, key)
		if err != nil {
			slog.Warn("hydrating field failed", "key", key, "error", err)
			continue
		}
		if !ok {
			continue
		}
		if l.adopt(key, raw, true) {
			changed = true
		}
	}
	return changed
}

// Start attaches a live subscription per field. Each notification
// overwrites the local field and triggers onChange.
func (l *Listener) Start() error {
	for _, key := range remote.Keys {
		key := key
		stop, err := l.docs.Subscribe(key, func(raw json.RawMessage) {
			// Overwrite unconditionally, even when the value round-tripped
			// unchanged through our own push. Last writer wins.
			if l.adopt(key, raw, false) && l.onChange != nil {
				l.onChange()
			}
		})
		if err != nil {
			l.Stop()
			return err
		}
		l.stops = append(l.stops, stop)
	}
	return nil
}

// Stop cancels all live subscriptions.
func (l *Listener) Stop() {
	for _, stop := range l.stops {
		stop()
	}
	l.stops = nil
}

// adopt overwrites the local field with the remote value. When
// compareFirst is set (hydration), an equal value is left alone and adopt
// reports false.
func (l *Listener) adopt(key string, raw json.RawMessage, compareFirst bool) bool {
	switch key {
	case remote.KeyMeetings:
		var meetings []*domain.Meeting
		if err := json.Unmarshal(raw, &meetings); err != nil {
			slog.Warn("remote value unparsable", "key", key, "error", err)
			return false
		}
		if meetings == nil {
			meetings = []*domain.Meeting{}
		}
		if compareFirst && sameJSON(l.state.Meetings, meetings) {
			return false
		}
		l.state.Meetings = meetings

	case remote.KeyTravel:
		var travel []*domain.TravelItem
		if err := json.Unmarshal(raw, &travel); err != nil {
			slog.Warn("remote value unparsable", "key", key, "error", err)
			return false
		}
		if travel == nil {
			travel = []*domain.TravelItem{}
		}
		if compareFirst && sameJSON(l.state.Travel, travel) {
			return false
		}
		l.state.Travel = travel

	case remote.KeyAssistantURL:
		var url string
		if err := json.Unmarshal(raw, &url); err != nil {
			// Tolerate a bare unquoted value.
			url = strings.Trim(string(raw), `"`)
		}
		if compareFirst && l.state.AssistantURL == url {
			return false
		}
		l.state.AssistantURL = url
	}
	return true
}

// sameJSON compares two values by their canonical JSON encoding.
func sameJSON(a, b any) bool {
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	return errA == nil && errB == nil && string(ja) == string(jb)
}
