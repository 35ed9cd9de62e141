// Package mirror keeps the local aggregate state loosely in sync with the
// remote document store: outbound pushes after every save, inbound
// hydration at startup, and live subscriptions that overwrite local fields
// when the remote side changes. Everything here is best effort: a single
// attempt, logged on failure, never retried, never surfaced to the user.
package mirror

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/alexanderramin/showdeck/internal/domain"
	"github.com/alexanderramin/showdeck/internal/remote"
)

const resultBufferSize = 16

// PushResult reports the outcome of one field upsert. Err is nil on
// success.
type PushResult struct {
	Key string
	Err error
}

// Mirror issues asynchronous merge upserts to the remote store, one per
// top-level state field. Push never blocks; outcomes are reported on the
// Results channel for callers that care, and dropped when nobody reads
// them fast enough.
type Mirror struct {
	docs    remote.DocStore
	results chan PushResult
	wg      sync.WaitGroup
}

// NewMirror creates a Mirror over the given store.
func NewMirror(docs remote.DocStore) *Mirror {
	return &Mirror{
		docs:    docs,
		results: make(chan PushResult, resultBufferSize),
	}
}

// Results exposes push outcomes for diagnostics. Reading it is optional.
func (m *Mirror) Results() <-chan PushResult {
	return m.results
}

// Push mirrors the three state fields to the remote store. Each field is
// serialized synchronously (the state may be mutated right after Push
// returns) and upserted on its own goroutine with merge semantics so
// unrelated remote fields stay untouched.
func (m *Mirror) Push(ctx context.Context, state *domain.State) {
	m.push(ctx, remote.KeyMeetings, state.Meetings)
	m.push(ctx, remote.KeyTravel, state.Travel)
	m.push(ctx, remote.KeyAssistantURL, state.AssistantURL)
}

// Wait blocks until all in-flight pushes settle. Tests use it; the UI
// never does.
func (m *Mirror) Wait() {
	m.wg.Wait()
}

func (m *Mirror) push(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		m.report(PushResult{Key: key, Err: err})
		return
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		err := m.docs.Set(ctx, key, json.RawMessage(raw), true)
		if err != nil {
			slog.Warn("mirroring field failed", "key", key, "error", err)
		}
		m.report(PushResult{Key: key, Err: err})
	}()
}

func (m *Mirror) report(r PushResult) {
	select {
	case m.results <- r:
	default:
	}
}
