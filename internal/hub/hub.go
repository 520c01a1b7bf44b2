// Package hub fans out live events to server-sent event subscribers.
package hub

import (
	"sync"

	"github.com/goccy/go-json"
)

// Topic names a stream of events.
type Topic string

// ReviewsTopic carries every newly created review.
const ReviewsTopic Topic = "reviews"

// Event is one message pushed to subscribers.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Client is the channel an SSE handler reads encoded events from.
type Client chan []byte

// clientBuffer is how many events a slow client may fall behind before
// events to it are dropped.
const clientBuffer = 16

// Hub tracks subscribers per topic.
type Hub struct {
	mu     sync.RWMutex
	topics map[Topic]map[Client]struct{}
}

func New() *Hub {
	return &Hub{topics: make(map[Topic]map[Client]struct{})}
}

// Subscribe registers a new client on topic.
func (h *Hub) Subscribe(topic Topic) Client {
	client := make(Client, clientBuffer)

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.topics[topic]; !ok {
		h.topics[topic] = make(map[Client]struct{})
	}
	h.topics[topic][client] = struct{}{}
	return client
}

// Unsubscribe removes client from topic and closes it.
func (h *Hub) Unsubscribe(topic Topic, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.topics[topic]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client)
	if len(clients) == 0 {
		delete(h.topics, topic)
	}
}

// Subscribers returns the number of clients on topic.
func (h *Hub) Subscribers(topic Topic) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Broadcast sends event to every client on topic without blocking. Clients
// whose buffer is full miss the event.
func (h *Hub) Broadcast(topic Topic, event Event) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.topics[topic]
	if !ok {
		return nil
	}
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}
	for client := range clients {
		select {
		case client <- msg:
		default:
		}
	}
	return nil
}
