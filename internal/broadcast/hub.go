// Package broadcast fans alert events out to live-feed subscribers.
package broadcast

import (
	"context"
	"log/slog"
	"sync"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
	"github.com/couchcryptid/wildfire-watch/internal/observability"
)

// Hub delivers alert events to every subscriber. Sends never block: a
// subscriber whose buffer is full misses the event.
type Hub struct {
	mu      sync.Mutex
	clients map[int]chan domain.AlertEvent
	nextID  int
	buffer  int
	closed  bool
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewHub creates a Hub whose subscriber channels hold buffer events.
func NewHub(buffer int, logger *slog.Logger, metrics *observability.Metrics) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		clients: make(map[int]chan domain.AlertEvent),
		buffer:  buffer,
		logger:  logger,
		metrics: metrics,
	}
}

// Subscribe adds a client and returns its id and event channel. The channel
// is closed on Unsubscribe or Close.
func (h *Hub) Subscribe() (int, <-chan domain.AlertEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan domain.AlertEvent, h.buffer)
	if h.closed {
		close(ch)
		return id, ch
	}
	h.clients[id] = ch
	h.metrics.StreamSubscribers.Set(float64(len(h.clients)))
	h.logger.Debug("stream client subscribed", "client_id", id, "clients", len(h.clients))
	return id, ch
}

// Unsubscribe removes a client. Unknown ids are ignored.
func (h *Hub) Unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch, ok := h.clients[id]
	if !ok {
		return
	}
	close(ch)
	delete(h.clients, id)
	h.metrics.StreamSubscribers.Set(float64(len(h.clients)))
	h.logger.Debug("stream client unsubscribed", "client_id", id, "clients", len(h.clients))
}

// Subscribers returns the number of connected clients.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// LoadBatch publishes events to all subscribers in order.
func (h *Hub) LoadBatch(_ context.Context, events []domain.AlertEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ev := range events {
		for id, ch := range h.clients {
			select {
			case ch <- ev:
			default:
				h.metrics.StreamDropped.Inc()
				h.logger.Debug("stream client lagging, event dropped", "client_id", id, "event_id", ev.ID)
			}
		}
	}
	return nil
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.clients {
		close(ch)
		delete(h.clients, id)
	}
	h.closed = true
	h.metrics.StreamSubscribers.Set(0)
}
