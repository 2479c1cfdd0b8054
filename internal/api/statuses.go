package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/tablero/internal/status"
)

func (s *Server) handleListStatuses(c *gin.Context) {
	valid := status.Valid()
	out := make([]gin.H, 0, len(valid))
	for _, st := range valid {
		out = append(out, gin.H{
			"status":      st,
			"column_name": status.ColumnName(st),
		})
	}
	ok(c, http.StatusOK, out)
}

// handleMapStatus answers GET /api/statuses/map?name=
func (s *Server) handleMapStatus(c *gin.Context) {
	name := c.Query("name")
	st := status.FromColumnName(name)
	ok(c, http.StatusOK, StatusMapping{
		Name:       name,
		Status:     string(st),
		ColumnName: status.ColumnName(st),
	})
}
