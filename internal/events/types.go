// Package events broadcasts board changes to interested subscribers
package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventProjectChanged EventType = "project_changed"
	EventColumnChanged  EventType = "column_changed"
	EventTaskChanged    EventType = "task_changed"
	EventLabelChanged   EventType = "label_changed"
	EventReordered      EventType = "reordered"
	EventPing           EventType = "ping"
)

// Event represents a database change notification
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	ProjectID  int       `json:"project_id"`          // For filtering - which project was modified
	EntityID   int       `json:"entity_id,omitempty"` // The task, column or label that changed
	Timestamp  time.Time `json:"timestamp"`
	SequenceID int64     `json:"sequence_id"` // Monotonically increasing, assigned by the Hub
}

// NewEvent creates an event with a fresh ID and timestamp
func NewEvent(eventType EventType, projectID, entityID int) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ProjectID: projectID,
		EntityID:  entityID,
		Timestamp: time.Now(),
	}
}

// Matches reports whether a subscriber of projectID should receive e.
// 0 on either side means all projects.
func (e Event) Matches(projectID int) bool {
	return e.ProjectID == 0 || projectID == 0 || e.ProjectID == projectID
}
