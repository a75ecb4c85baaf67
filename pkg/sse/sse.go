// Package sse is the Server-Sent Events fallback of the change feed, for
// dashboard clients that cannot hold a WebSocket open (proxies, older
// embedded views). GET /sse/changes streams the same store events the
// WebSocket hub broadcasts.
package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shashiranjanraj/backoffice/pkg/event"
)

// heartbeatEvery keeps intermediaries from timing out an idle stream.
const heartbeatEvery = 25 * time.Second

// Stream represents an active SSE connection to one client.
type Stream struct {
	w       http.ResponseWriter
	r       *http.Request
	flusher http.Flusher
	closed  bool
}

// New creates an SSE stream and sets the required headers.
// Returns nil if the ResponseWriter does not support flushing.
func New(w http.ResponseWriter, r *http.Request) *Stream {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return nil
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // disable nginx buffering

	return &Stream{w: w, r: r, flusher: flusher}
}

// Send writes a named SSE event with a JSON-encoded data payload.
func (s *Stream) Send(name string, data any) error {
	if s == nil || s.closed {
		return nil
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("sse: marshal: %w", err)
	}

	fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", name, payload)
	s.flusher.Flush()

	select {
	case <-s.r.Context().Done():
		s.closed = true
	default:
	}
	return nil
}

// Comment writes an SSE comment, used as a keepalive heartbeat.
func (s *Stream) Comment(msg string) {
	if s == nil || s.closed {
		return
	}
	fmt.Fprintf(s.w, ": %s\n\n", msg)
	s.flusher.Flush()
}

// IsClosed reports whether the client has disconnected.
func (s *Stream) IsClosed() bool {
	if s == nil {
		return true
	}
	select {
	case <-s.r.Context().Done():
		s.closed = true
	default:
	}
	return s.closed
}

// ServeChanges streams every event published on bus to the client until it
// disconnects. Events that arrive while the write buffer is full are dropped,
// matching the WebSocket hub's behavior.
func ServeChanges(w http.ResponseWriter, r *http.Request, bus *event.Bus) {
	stream := New(w, r)
	if stream == nil {
		return
	}

	events := make(chan event.Event, 64)
	unsubscribe := bus.Subscribe(event.Any, func(e event.Event) {
		select {
		case events <- e:
		default:
		}
	})
	defer unsubscribe()

	heartbeat := time.NewTicker(heartbeatEvery)
	defer heartbeat.Stop()

	stream.Comment("connected")

	for {
		select {
		case <-r.Context().Done():
			return
		case e := <-events:
			if err := stream.Send(e.Name, e.Payload); err != nil {
				return
			}
			if stream.IsClosed() {
				return
			}
		case <-heartbeat.C:
			stream.Comment("keepalive")
			if stream.IsClosed() {
				return
			}
		}
	}
}
