package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/thenoetrevino/tablero/internal/events"
)

// RecordingPublisher collects published events in memory
type RecordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

// Publish records the event
func (p *RecordingPublisher) Publish(event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// Events returns a copy of everything published so far
func (p *RecordingPublisher) Events() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.Event(nil), p.events...)
}

// Last returns the most recent event, failing the test if there is none
func (p *RecordingPublisher) Last(t *testing.T) events.Event {
	t.Helper()
	all := p.Events()
	if len(all) == 0 {
		t.Fatal("No events were published")
	}
	return all[len(all)-1]
}

// WaitForEvent waits for an event on a channel with timeout.
// Returns the event if received, or fails the test on timeout.
func WaitForEvent(t *testing.T, ch <-chan events.Event, timeout time.Duration) events.Event {
	t.Helper()

	select {
	case event, ok := <-ch:
		if !ok {
			t.Fatal("Event channel closed unexpectedly")
		}
		return event
	case <-time.After(timeout):
		t.Fatalf("Timeout waiting for event after %v", timeout)
		return events.Event{}
	}
}
