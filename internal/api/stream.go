package api

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/tablero/internal/events"
)

// handleEvents streams hub events as server-sent events.
// ?project= filters to one project; 0 or absent means all.
func (s *Server) handleEvents(c *gin.Context) {
	if s.hub == nil {
		fail(c, http.StatusServiceUnavailable, "live updates are disabled")
		return
	}
	projectID, valid := queryInt(c, "project")
	if !valid {
		return
	}

	sub := s.hub.Subscribe(projectID)
	defer s.hub.Unsubscribe(sub)

	ping := time.NewTicker(s.pingInterval)
	defer ping.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	// An initial ping tells the client the subscription is live
	c.SSEvent(string(events.EventPing), events.NewEvent(events.EventPing, projectID, 0))
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case event, open := <-sub.Events():
			if !open {
				return false
			}
			c.SSEvent(string(event.Type), event)
			return true
		case <-ping.C:
			c.SSEvent(string(events.EventPing), events.NewEvent(events.EventPing, projectID, 0))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func (s *Server) handleMetrics(c *gin.Context) {
	if s.hub == nil {
		fail(c, http.StatusServiceUnavailable, "live updates are disabled")
		return
	}
	ok(c, http.StatusOK, s.hub.Metrics())
}
