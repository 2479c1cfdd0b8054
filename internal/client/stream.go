package client

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/thenoetrevino/tablero/internal/events"
)

// Subscribe streams server events for projectID (0 = all projects).
// The channel closes when ctx is cancelled or the server ends the stream.
func (c *Client) Subscribe(ctx context.Context, projectID int) (<-chan events.Event, error) {
	url := fmt.Sprintf("%s/api/events?project=%d", c.baseURL, projectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")

	// The stream outlives the default request timeout
	streamClient := *c.http
	streamClient.Timeout = 0

	resp, err := streamClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("subscribing: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &Error{StatusCode: resp.StatusCode, Message: "event stream unavailable"}
	}

	out := make(chan events.Event, 16)
	go func() {
		defer close(out)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			data, found := strings.CutPrefix(scanner.Text(), "data:")
			if !found {
				continue
			}
			var event events.Event
			if err := json.Unmarshal([]byte(strings.TrimSpace(data)), &event); err != nil {
				continue
			}
			if event.Type == events.EventPing {
				continue
			}
			select {
			case out <- event:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
