package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	labelservice "github.com/thenoetrevino/tablero/internal/services/label"
)

func (s *Server) handleListLabels(c *gin.Context) {
	projectID, valid := paramID(c, "id")
	if !valid {
		return
	}
	labels, err := s.app.LabelService.GetLabelsByProject(c.Request.Context(), projectID)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, labels)
}

func (s *Server) handleCreateLabel(c *gin.Context) {
	projectID, valid := paramID(c, "id")
	if !valid {
		return
	}
	var req LabelRequest
	if !bind(c, &req) {
		return
	}

	create := labelservice.CreateLabelRequest{ProjectID: projectID}
	if req.Name != nil {
		create.Name = *req.Name
	}
	if req.Color != nil {
		create.Color = *req.Color
	}

	label, err := s.app.LabelService.CreateLabel(c.Request.Context(), create)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, label)
}

func (s *Server) handleUpdateLabel(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	var req LabelRequest
	if !bind(c, &req) {
		return
	}

	ctx := c.Request.Context()
	err := s.app.LabelService.UpdateLabel(ctx, labelservice.UpdateLabelRequest{
		ID:    id,
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	label, err := s.app.LabelService.GetLabelByID(ctx, id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, label)
}

func (s *Server) handleDeleteLabel(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	if err := s.app.LabelService.DeleteLabel(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"id": id})
}
