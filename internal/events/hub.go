package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
)

var (
	ErrHubFull   = errors.New("event hub broadcast queue full")
	ErrHubClosed = errors.New("event hub closed")
)

const (
	defaultBroadcastBuffer  = 100
	defaultSubscriberBuffer = 10
)

// Subscription receives the events of one project (0 = all projects)
type Subscription struct {
	ch        chan Event
	projectID atomic.Int64
	closeOnce sync.Once
}

// Events returns the channel events are delivered on. It is closed on Unsubscribe or hub shutdown.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// ProjectID returns the project this subscription is filtered to
func (s *Subscription) ProjectID() int {
	return int(s.projectID.Load())
}

// SetProject changes the subscription's project filter
func (s *Subscription) SetProject(projectID int) {
	s.projectID.Store(int64(projectID))
}

func (s *Subscription) close() {
	s.closeOnce.Do(func() {
		close(s.ch)
	})
}

// Hub fans published events out to subscribers.
// Slow subscribers have events dropped rather than blocking publishers.
type Hub struct {
	subscribers      map[*Subscription]bool
	mu               sync.RWMutex
	broadcast        chan Event
	done             chan struct{}
	metrics          *Metrics
	sequenceCounter  atomic.Int64
	subscriberBuffer int
	shutdownOnce     sync.Once
	logger           *slog.Logger
}

// HubOption configures a Hub
type HubOption func(*Hub)

// WithBroadcastBuffer sets how many published events may wait for delivery
func WithBroadcastBuffer(n int) HubOption {
	return func(h *Hub) {
		if n > 0 {
			h.broadcast = make(chan Event, n)
		}
	}
}

// WithSubscriberBuffer sets each subscriber's queue size
func WithSubscriberBuffer(n int) HubOption {
	return func(h *Hub) {
		if n > 0 {
			h.subscriberBuffer = n
		}
	}
}

// WithHubLogger sets the hub's logger
func WithHubLogger(logger *slog.Logger) HubOption {
	return func(h *Hub) {
		h.logger = logger
	}
}

// NewHub creates a hub. Call Run to start delivering events.
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		subscribers:      make(map[*Subscription]bool),
		broadcast:        make(chan Event, defaultBroadcastBuffer),
		done:             make(chan struct{}),
		metrics:          NewMetrics(),
		subscriberBuffer: defaultSubscriberBuffer,
		logger:           slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run distributes events until ctx is cancelled, then shuts the hub down
func (h *Hub) Run(ctx context.Context) {
	h.logger.Debug("event hub started")
	defer h.Shutdown()

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.done:
			return
		case event := <-h.broadcast:
			h.deliver(event)
		}
	}
}

func (h *Hub) deliver(event Event) {
	event.SequenceID = h.sequenceCounter.Add(1)

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers {
		if !event.Matches(sub.ProjectID()) {
			continue
		}
		// Non-blocking send - if subscriber is slow, skip
		select {
		case sub.ch <- event:
			h.metrics.EventsDelivered.Add(1)
		default:
			h.metrics.EventsDropped.Add(1)
			h.logger.Warn("subscriber queue full, event dropped",
				"event_type", event.Type,
				"project_id", event.ProjectID)
		}
	}
}

// Publish queues an event for delivery without blocking
func (h *Hub) Publish(event Event) error {
	select {
	case <-h.done:
		return ErrHubClosed
	default:
	}

	select {
	case h.broadcast <- event:
		h.metrics.EventsPublished.Add(1)
		return nil
	default:
		return ErrHubFull
	}
}

// Subscribe registers a subscriber for projectID (0 = all projects)
func (h *Hub) Subscribe(projectID int) *Subscription {
	sub := &Subscription{ch: make(chan Event, h.subscriberBuffer)}
	sub.SetProject(projectID)

	h.mu.Lock()
	defer h.mu.Unlock()

	select {
	case <-h.done:
		sub.close()
		return sub
	default:
	}

	h.subscribers[sub] = true
	h.metrics.ActiveSubscribers.Store(int32(len(h.subscribers)))
	h.logger.Debug("subscriber added", "project_id", projectID, "total", len(h.subscribers))
	return sub
}

// Unsubscribe removes a subscriber and closes its channel
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	delete(h.subscribers, sub)
	h.metrics.ActiveSubscribers.Store(int32(len(h.subscribers)))
	h.mu.Unlock()

	sub.close()
}

// Metrics returns a snapshot of hub statistics
func (h *Hub) Metrics() MetricsSnapshot {
	return h.metrics.Snapshot()
}

// Shutdown closes every subscription and rejects further publishes
func (h *Hub) Shutdown() {
	h.shutdownOnce.Do(func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		close(h.done)
		for sub := range h.subscribers {
			sub.close()
		}
		h.subscribers = make(map[*Subscription]bool)
		h.metrics.ActiveSubscribers.Store(0)
		h.logger.Debug("event hub stopped")
	})
}
