package state

import "github.com/thenoetrevino/tablero/internal/reorder"

// NotificationLevel represents the severity of a notification
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelWarning
	LevelError
)

// LevelFromReorder maps a coordinator notification severity onto a level
func LevelFromReorder(s reorder.Severity) NotificationLevel {
	switch s {
	case reorder.SeverityError:
		return LevelError
	case reorder.SeverityWarning:
		return LevelWarning
	default:
		return LevelInfo
	}
}

// Notification is a single message with a severity level
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the notifications waiting to be shown.
// The newest one is displayed; the rest are kept for the next redraw.
type NotificationState struct {
	notifications []Notification
}

// NewNotificationState creates an empty NotificationState
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add adds a notification
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{Level: level, Message: message})
}

// Notify implements reorder.Notifier
func (s *NotificationState) Notify(n reorder.Notification) {
	s.Add(LevelFromReorder(n.Severity), n.Message)
}

// Clear removes all notifications
func (s *NotificationState) Clear() {
	s.notifications = nil
}

// ClearLevel removes all notifications of a specific level
func (s *NotificationState) ClearLevel(level NotificationLevel) {
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.Level != level {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
}

// All returns all current notifications, oldest first
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// Latest returns the newest notification
func (s *NotificationState) Latest() (Notification, bool) {
	if len(s.notifications) == 0 {
		return Notification{}, false
	}
	return s.notifications[len(s.notifications)-1], true
}

// HasAny returns true if there are any notifications
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}
