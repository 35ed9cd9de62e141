// Package remote defines the optional remote document store used for
// cross-device mirroring. The store is an opaque collaborator: three
// documents keyed by field name, each holding {"value": <payload>}, with
// get, merge-set, and subscribe operations. All use is best effort; a
// missing or failing store never affects local behavior beyond a log line.
package remote

import (
	"context"
	"encoding/json"
)

// Document keys, one per mirrored top-level state field.
const (
	KeyMeetings     = "meetings"
	KeyTravel       = "travel"
	KeyAssistantURL = "externalLink"
)

// Keys lists every mirrored document key.
var Keys = []string{KeyMeetings, KeyTravel, KeyAssistantURL}

// DocStore is the remote document collection contract.
type DocStore interface {
	// Get fetches the current value for key. ok is false when the
	// document does not exist.
	Get(ctx context.Context, key string) (value json.RawMessage, ok bool, err error)

	// Set upserts the value for key. When merge is true, unrelated fields
	// of the remote document are left untouched.
	Set(ctx context.Context, key string, value any, merge bool) error

	// Subscribe registers fn to be called with the new value on every
	// remote change to key. The returned stop function cancels the
	// subscription. fn may be invoked from the store's own goroutine.
	Subscribe(key string, fn func(json.RawMessage)) (stop func(), err error)
}

// envelope is the on-the-wire document shape.
type envelope struct {
	Value json.RawMessage `json:"value"`
}

// NopStore is the DocStore used when no remote store is configured. Every
// operation is a successful no-op.
type NopStore struct{}

func (NopStore) Get(context.Context, string) (json.RawMessage, bool, error) {
	return nil, false, nil
}

func (NopStore) Set(context.Context, string, any, bool) error { return nil }

func (NopStore) Subscribe(string, func(json.RawMessage)) (func(), error) {
	return func() {}, nil
}
