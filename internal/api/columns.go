package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	columnservice "github.com/thenoetrevino/tablero/internal/services/column"
)

func (s *Server) handleListColumns(c *gin.Context) {
	projectID, valid := paramID(c, "id")
	if !valid {
		return
	}
	columns, err := s.app.ColumnService.GetColumnsByProject(c.Request.Context(), projectID)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, columns)
}

func (s *Server) handleCreateColumn(c *gin.Context) {
	projectID, valid := paramID(c, "id")
	if !valid {
		return
	}
	var req ColumnRequest
	if !bind(c, &req) {
		return
	}

	column, err := s.app.ColumnService.CreateColumn(c.Request.Context(), columnservice.CreateColumnRequest{
		Name:      req.Name,
		ProjectID: projectID,
		Position:  req.Position,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, column)
}

func (s *Server) handleReorderColumns(c *gin.Context) {
	projectID, valid := paramID(c, "id")
	if !valid {
		return
	}
	var req OrderRequest
	if !bind(c, &req) {
		return
	}

	ctx := c.Request.Context()
	if err := s.app.ColumnService.ReorderColumns(ctx, projectID, req.IDs); err != nil {
		failErr(c, err)
		return
	}
	columns, err := s.app.ColumnService.GetColumnsByProject(ctx, projectID)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, columns)
}

func (s *Server) handleColumnStatuses(c *gin.Context) {
	projectID, valid := paramID(c, "id")
	if !valid {
		return
	}
	statuses, err := s.app.ColumnService.GetColumnStatuses(c.Request.Context(), projectID)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, statuses)
}

func (s *Server) handleGetColumn(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	column, err := s.app.ColumnService.GetColumnByID(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, column)
}

func (s *Server) handleRenameColumn(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	var req ColumnRequest
	if !bind(c, &req) {
		return
	}

	ctx := c.Request.Context()
	if err := s.app.ColumnService.UpdateColumnName(ctx, id, req.Name); err != nil {
		failErr(c, err)
		return
	}
	column, err := s.app.ColumnService.GetColumnByID(ctx, id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, column)
}

func (s *Server) handleDeleteColumn(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	force := c.Query("force") == "true"
	if err := s.app.ColumnService.DeleteColumn(c.Request.Context(), id, force); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"id": id})
}

func (s *Server) handleListColumnTasks(c *gin.Context) {
	columnID, valid := paramID(c, "id")
	if !valid {
		return
	}
	tasks, err := s.app.TaskService.GetTasksByColumn(c.Request.Context(), columnID)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, tasks)
}

func (s *Server) handleReorderTasks(c *gin.Context) {
	columnID, valid := paramID(c, "id")
	if !valid {
		return
	}
	var req OrderRequest
	if !bind(c, &req) {
		return
	}

	ctx := c.Request.Context()
	if err := s.app.TaskService.ReorderTasks(ctx, columnID, req.IDs); err != nil {
		failErr(c, err)
		return
	}
	tasks, err := s.app.TaskService.GetTasksByColumn(ctx, columnID)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, tasks)
}
