// Package logstream carries hunter progress messages from the broker to the
// session logs and to the clients streaming them.
package logstream

import (
	"sync"

	"careeros/pkg/domain"
)

// Hub fans log entries out to the subscribers of a session. Publishing never
// blocks: a subscriber whose buffer is full misses the entry.
type Hub struct {
	mu         sync.Mutex
	bufferSize int
	topics     map[domain.SessionID]map[chan domain.LogEntry]struct{}
}

// NewHub creates a Hub whose subscribers buffer up to bufferSize entries.
func NewHub(bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = 1
	}

	return &Hub{
		bufferSize: bufferSize,
		topics:     make(map[domain.SessionID]map[chan domain.LogEntry]struct{}),
	}
}

// Subscribe registers a subscriber for the session. The returned function
// unsubscribes and closes the channel. It is safe to call more than once.
func (h *Hub) Subscribe(id domain.SessionID) (<-chan domain.LogEntry, func()) {
	ch := make(chan domain.LogEntry, h.bufferSize)

	h.mu.Lock()
	subs, ok := h.topics[id]
	if !ok {
		subs = make(map[chan domain.LogEntry]struct{})
		h.topics[id] = subs
	}
	subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once

	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			delete(subs, ch)
			if len(subs) == 0 {
				delete(h.topics, id)
			}
			close(ch)
		})
	}
}

// Publish delivers entry to every subscriber of the session and returns how
// many received it.
func (h *Hub) Publish(id domain.SessionID, entry domain.LogEntry) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for ch := range h.topics[id] {
		select {
		case ch <- entry:
			delivered++
		default:
			// slow subscriber
		}
	}

	return delivered
}

// Subscribers returns the number of subscribers of the session.
func (h *Hub) Subscribers(id domain.SessionID) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.topics[id])
}
