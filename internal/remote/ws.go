package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	ws "github.com/coder/websocket"
)

const (
	sendBufferSize = 16
	pingInterval   = 30 * time.Second
)

// wire frame operations.
const (
	opGet    = "get"
	opSet    = "set"
	opSub    = "sub"
	opDoc    = "doc"
	opChange = "change"
)

// frame is a single JSON message on the sync connection.
type frame struct {
	Op     string    `json:"op"`
	ID     int64     `json:"id,omitempty"`
	Key    string    `json:"key,omitempty"`
	Merge  bool      `json:"merge,omitempty"`
	Doc    *envelope `json:"doc,omitempty"`
	Exists bool      `json:"exists,omitempty"`
}

// WSStore implements DocStore over a single WebSocket connection to a sync
// endpoint. Writes are queued and never block the caller; a full queue
// drops the message, matching the best-effort mirroring contract.
type WSStore struct {
	conn    *ws.Conn
	send    chan []byte
	timeout time.Duration
	cancel  context.CancelFunc

	mu      sync.Mutex
	pending map[int64]chan frame
	subs    map[string]map[int]func(json.RawMessage)
	nextID  int64
	nextSub int
}

// Dial connects to the sync endpoint and starts the read and write pumps.
func Dial(ctx context.Context, cfg Config) (*WSStore, error) {
	conn, _, err := ws.Dial(ctx, cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing sync endpoint: %w", err)
	}

	runCtx, cancel := context.WithCancel(context.Background())
	s := &WSStore{
		conn:    conn,
		send:    make(chan []byte, sendBufferSize),
		timeout: cfg.Timeout,
		cancel:  cancel,
		pending: make(map[int64]chan frame),
		subs:    make(map[string]map[int]func(json.RawMessage)),
	}

	go s.writePump(runCtx)
	go s.readPump(runCtx)

	return s, nil
}

// Close tears down the connection and both pumps.
func (s *WSStore) Close() error {
	s.cancel()
	return s.conn.Close(ws.StatusNormalClosure, "")
}

func (s *WSStore) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	reply := make(chan frame, 1)
	s.pending[id] = reply
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.pending, id)
		s.mu.Unlock()
	}()

	if err := s.enqueue(frame{Op: opGet, ID: id, Key: key}); err != nil {
		return nil, false, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	select {
	case f := <-reply:
		if !f.Exists || f.Doc == nil {
			return nil, false, nil
		}
		return f.Doc.Value, true, nil
	case <-ctx.Done():
		return nil, false, fmt.Errorf("get %s: %w", key, ctx.Err())
	}
}

func (s *WSStore) Set(_ context.Context, key string, value any, merge bool) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return s.enqueue(frame{Op: opSet, Key: key, Merge: merge, Doc: &envelope{Value: raw}})
}

func (s *WSStore) Subscribe(key string, fn func(json.RawMessage)) (func(), error) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	first := len(s.subs[key]) == 0
	if s.subs[key] == nil {
		s.subs[key] = make(map[int]func(json.RawMessage))
	}
	s.subs[key][id] = fn
	s.mu.Unlock()

	if first {
		if err := s.enqueue(frame{Op: opSub, Key: key}); err != nil {
			return nil, err
		}
	}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[key], id)
	}, nil
}

// enqueue queues a frame for the write pump without blocking.
func (s *WSStore) enqueue(f frame) error {
	msg, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	select {
	case s.send <- msg:
		return nil
	default:
		return fmt.Errorf("sync send queue full, dropping %s %s", f.Op, f.Key)
	}
}

// readPump reads frames and dispatches them to pending gets and
// subscribers. It returns on error (connection close).
func (s *WSStore) readPump(ctx context.Context) {
	for {
		_, msg, err := s.conn.Read(ctx)
		if err != nil {
			return
		}
		var f frame
		if err := json.Unmarshal(msg, &f); err != nil {
			slog.Warn("sync: unparsable frame", "error", err)
			continue
		}
		switch f.Op {
		case opDoc:
			s.mu.Lock()
			reply, ok := s.pending[f.ID]
			s.mu.Unlock()
			if ok {
				reply <- f
			}
		case opChange:
			if f.Doc == nil {
				continue
			}
			s.mu.Lock()
			fns := make([]func(json.RawMessage), 0, len(s.subs[f.Key]))
			for _, fn := range s.subs[f.Key] {
				fns = append(fns, fn)
			}
			s.mu.Unlock()
			for _, fn := range fns {
				fn(f.Doc.Value)
			}
		}
	}
}

// writePump drains the send channel and writes messages to the WebSocket.
// It also sends periodic pings to detect stale connections.
func (s *WSStore) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg := <-s.send:
			if err := s.conn.Write(ctx, ws.MessageText, msg); err != nil {
				slog.Warn("sync: write failed", "error", err)
				return
			}
		case <-ticker.C:
			if err := s.conn.Ping(ctx); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
