package events

import (
	"errors"
	"log/slog"
	"time"
)

// PublishWithRetry attempts to publish an event with retry logic.
// It makes up to maxRetries attempts with exponential backoff.
// Returns the error from the final attempt if all retries fail.
//
// Live updates are best effort, so callers log the error instead of
// failing the operation that produced the event.
func PublishWithRetry(publisher Publisher, event Event, maxRetries int) error {
	if publisher == nil {
		return nil // No hub (e.g., in tests or one-shot CLI commands)
	}

	var lastErr error
	baseDelay := 50 * time.Millisecond

	for attempt := 0; attempt < maxRetries; attempt++ {
		err := publisher.Publish(event)
		if err == nil {
			if attempt > 0 {
				slog.Debug("event published after retry",
					"attempt", attempt+1,
					"event_type", event.Type,
					"project_id", event.ProjectID)
			}
			return nil
		}

		lastErr = err
		if errors.Is(err, ErrHubClosed) {
			break
		}

		// Don't sleep after the last attempt
		if attempt < maxRetries-1 {
			// Exponential backoff: 50ms, 100ms, 200ms
			delay := baseDelay * (1 << attempt)
			slog.Debug("event publish failed, retrying",
				"attempt", attempt+1,
				"max_retries", maxRetries,
				"retry_delay", delay,
				"error", err)
			time.Sleep(delay)
		}
	}

	// Log final failure at warn level since this affects live updates
	slog.Warn("event publish failed",
		"attempts", maxRetries,
		"event_type", event.Type,
		"project_id", event.ProjectID,
		"error", lastErr)

	return lastErr
}
