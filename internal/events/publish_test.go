package events

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockRetryPublisher struct {
	sendAttempts int
	failUntil    int // Fail until this attempt number (0-indexed)
	err          error
	lastEvent    Event
}

func (m *mockRetryPublisher) Publish(event Event) error {
	m.lastEvent = event
	currentAttempt := m.sendAttempts
	m.sendAttempts++

	if currentAttempt < m.failUntil {
		if m.err != nil {
			return m.err
		}
		return errors.New("simulated send failure")
	}
	return nil
}

func TestPublishWithRetry_Success(t *testing.T) {
	mock := &mockRetryPublisher{}
	err := PublishWithRetry(mock, NewEvent(EventTaskChanged, 1, 0), 3)

	assert.NoError(t, err)
	assert.Equal(t, 1, mock.sendAttempts)
	assert.Equal(t, 1, mock.lastEvent.ProjectID)
}

func TestPublishWithRetry_SuccessAfterRetries(t *testing.T) {
	mock := &mockRetryPublisher{failUntil: 2}
	err := PublishWithRetry(mock, NewEvent(EventTaskChanged, 1, 0), 3)

	assert.NoError(t, err)
	assert.Equal(t, 3, mock.sendAttempts)
}

func TestPublishWithRetry_AllFail(t *testing.T) {
	mock := &mockRetryPublisher{failUntil: 10}
	err := PublishWithRetry(mock, NewEvent(EventTaskChanged, 1, 0), 3)

	assert.Error(t, err)
	assert.Equal(t, 3, mock.sendAttempts)
}

func TestPublishWithRetry_StopsWhenClosed(t *testing.T) {
	mock := &mockRetryPublisher{failUntil: 10, err: ErrHubClosed}
	err := PublishWithRetry(mock, NewEvent(EventTaskChanged, 1, 0), 3)

	assert.ErrorIs(t, err, ErrHubClosed)
	assert.Equal(t, 1, mock.sendAttempts)
}

func TestPublishWithRetry_NilPublisher(t *testing.T) {
	assert.NoError(t, PublishWithRetry(nil, NewEvent(EventTaskChanged, 1, 0), 3))
}
