package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/tablero/internal/models"
	taskservice "github.com/thenoetrevino/tablero/internal/services/task"
	"github.com/thenoetrevino/tablero/internal/status"
)

func (s *Server) handleCreateTask(c *gin.Context) {
	columnID, valid := paramID(c, "id")
	if !valid {
		return
	}
	var req TaskRequest
	if !bind(c, &req) {
		return
	}

	create := taskservice.CreateTaskRequest{
		ColumnID: columnID,
		DueDate:  req.DueDate,
		Position: req.Position,
		LabelIDs: req.LabelIDs,
	}
	if req.Title != nil {
		create.Title = *req.Title
	}
	if req.Description != nil {
		create.Description = *req.Description
	}

	task, err := s.app.TaskService.CreateTask(c.Request.Context(), create)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, task)
}

// handleListTasksByStatus answers GET /api/tasks?status=&project=
func (s *Server) handleListTasksByStatus(c *gin.Context) {
	st, err := status.Parse(c.Query("status"))
	if err != nil {
		failErr(c, err)
		return
	}
	projectID, valid := queryInt(c, "project")
	if !valid {
		return
	}

	tasks, err := s.app.TaskService.ListTasksByStatus(c.Request.Context(), projectID, st)
	if err != nil {
		failErr(c, err)
		return
	}
	if tasks == nil {
		tasks = []*models.TaskDetail{}
	}
	ok(c, http.StatusOK, tasks)
}

func (s *Server) handleGetTask(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	s.respondTaskDetail(c, id, http.StatusOK)
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	var req TaskRequest
	if !bind(c, &req) {
		return
	}

	err := s.app.TaskService.UpdateTask(c.Request.Context(), taskservice.UpdateTaskRequest{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		ClearDueDate: req.ClearDueDate,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	s.respondTaskDetail(c, id, http.StatusOK)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	if err := s.app.TaskService.DeleteTask(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"id": id})
}

// handleMoveTask moves a task to a column position, or by status to the first matching column
func (s *Server) handleMoveTask(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	var req MoveRequest
	if !bind(c, &req) {
		return
	}

	ctx := c.Request.Context()
	var err error
	switch {
	case req.Status != "":
		var st status.Status
		if st, err = status.Parse(req.Status); err == nil {
			err = s.app.TaskService.MoveTaskToStatus(ctx, id, st)
		}
	case req.ColumnID > 0:
		err = s.app.TaskService.MoveTask(ctx, id, req.ColumnID, req.Position)
	default:
		fail(c, http.StatusBadRequest, "column_id or status is required")
		return
	}
	if err != nil {
		failErr(c, err)
		return
	}
	s.respondTaskDetail(c, id, http.StatusOK)
}

func (s *Server) handleAttachLabel(c *gin.Context) {
	s.changeLabel(c, s.app.TaskService.AttachLabel)
}

func (s *Server) handleDetachLabel(c *gin.Context) {
	s.changeLabel(c, s.app.TaskService.DetachLabel)
}

func (s *Server) changeLabel(c *gin.Context, op func(ctx context.Context, taskID, labelID int) error) {
	taskID, valid := paramID(c, "id")
	if !valid {
		return
	}
	labelID, valid := paramID(c, "labelID")
	if !valid {
		return
	}
	if err := op(c.Request.Context(), taskID, labelID); err != nil {
		failErr(c, err)
		return
	}
	s.respondTaskDetail(c, taskID, http.StatusOK)
}

func (s *Server) handleAddChecklistItem(c *gin.Context) {
	taskID, valid := paramID(c, "id")
	if !valid {
		return
	}
	var req ChecklistRequest
	if !bind(c, &req) {
		return
	}
	text := ""
	if req.Text != nil {
		text = *req.Text
	}

	item, err := s.app.TaskService.AddChecklistItem(c.Request.Context(), taskID, text)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, item)
}

func (s *Server) handleUpdateChecklistItem(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	var req ChecklistRequest
	if !bind(c, &req) {
		return
	}

	ctx := c.Request.Context()
	if req.Text != nil {
		if err := s.app.TaskService.UpdateChecklistItem(ctx, id, *req.Text); err != nil {
			failErr(c, err)
			return
		}
	}
	if req.Done != nil {
		if err := s.app.TaskService.SetChecklistItemDone(ctx, id, *req.Done); err != nil {
			failErr(c, err)
			return
		}
	}
	ok(c, http.StatusOK, gin.H{"id": id})
}

func (s *Server) handleToggleChecklistItem(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	item, err := s.app.TaskService.ToggleChecklistItem(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, item)
}

func (s *Server) handleDeleteChecklistItem(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	if err := s.app.TaskService.DeleteChecklistItem(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"id": id})
}

func (s *Server) respondTaskDetail(c *gin.Context, id, code int) {
	detail, err := s.app.TaskService.GetTaskDetail(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, code, detail)
}
