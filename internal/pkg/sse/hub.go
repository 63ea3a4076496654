package sse

import (
	"sync"
)

// Event is one message pushed to a connected employee.
type Event struct {
	Name string
	Data interface{}
}

// Hub fans notification events out to connected employees. An employee
// may hold several connections, each gets its own channel.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]map[chan Event]struct{})}
}

// Subscribe opens a channel for the employee. The returned cleanup must
// be called when the connection ends.
func (h *Hub) Subscribe(employeeID string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)
	if h.conns[employeeID] == nil {
		h.conns[employeeID] = make(map[chan Event]struct{})
	}
	h.conns[employeeID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.conns[employeeID], ch)
		close(ch)
		if len(h.conns[employeeID]) == 0 {
			delete(h.conns, employeeID)
		}
	}
	return ch, cleanup
}

// Publish delivers an event to every connection of one employee. A full
// channel is skipped rather than blocked on, a slow reader misses the
// event and catches up from the inbox.
func (h *Hub) Publish(employeeID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.conns[employeeID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// PublishToMany delivers an event to each listed employee.
func (h *Hub) PublishToMany(employeeIDs []string, event Event) {
	for _, id := range employeeIDs {
		h.Publish(id, event)
	}
}

// Connected reports how many connections an employee currently holds.
func (h *Hub) Connected(employeeID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[employeeID])
}
