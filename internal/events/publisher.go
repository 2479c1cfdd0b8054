package events

// Publisher accepts events for delivery.
// Services depend on this rather than on the Hub so they can run without one.
type Publisher interface {
	Publish(event Event) error
}

// Compile-time verification that *Hub implements Publisher
var _ Publisher = (*Hub)(nil)
