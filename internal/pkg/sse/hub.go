package sse

import (
	"sync"
)

// Event is one server-sent event published on a topic
type Event struct {
	Topic string
	Event string
	Data  interface{}
}

// Hub fans events out to every subscriber of a topic
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
	last        map[string]Event
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
		last:        make(map[string]Event),
	}
}

// Subscribe registers a subscriber on topic and returns its channel and a
// cleanup function. The most recent event on the topic, if any, is queued
// immediately.
func (h *Hub) Subscribe(topic string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)

	if h.subscribers[topic] == nil {
		h.subscribers[topic] = make(map[chan Event]struct{})
	}
	h.subscribers[topic][ch] = struct{}{}

	if ev, ok := h.last[topic]; ok {
		ch <- ev
	}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers[topic], ch)
			close(ch)
			if len(h.subscribers[topic]) == 0 {
				delete(h.subscribers, topic)
			}
		})
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers of its topic and remembers it as
// the topic's latest.
func (h *Hub) Publish(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.last[event.Topic] = event
	for ch := range h.subscribers[event.Topic] {
		select {
		case ch <- event:
		default:
			// Skip if channel is full (non-blocking to prevent deadlock)
		}
	}
}

// Last returns the most recent event published on topic
func (h *Hub) Last(topic string) (Event, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ev, ok := h.last[topic]
	return ev, ok
}

// SubscriberCount returns the number of active subscribers on a topic
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers[topic])
}
