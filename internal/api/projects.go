package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectservice "github.com/thenoetrevino/tablero/internal/services/project"
)

func (s *Server) handleListProjects(c *gin.Context) {
	projects, err := s.app.ProjectService.GetAllProjects(c.Request.Context())
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, projects)
}

func (s *Server) handleCreateProject(c *gin.Context) {
	var req ProjectRequest
	if !bind(c, &req) {
		return
	}

	create := projectservice.CreateProjectRequest{}
	if req.Name != nil {
		create.Name = *req.Name
	}
	if req.Description != nil {
		create.Description = *req.Description
	}

	project, err := s.app.ProjectService.CreateProject(c.Request.Context(), create)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, project)
}

func (s *Server) handleGetProject(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	project, err := s.app.ProjectService.GetProjectByID(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, project)
}

func (s *Server) handleUpdateProject(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	var req ProjectRequest
	if !bind(c, &req) {
		return
	}

	ctx := c.Request.Context()
	err := s.app.ProjectService.UpdateProject(ctx, projectservice.UpdateProjectRequest{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		failErr(c, err)
		return
	}

	project, err := s.app.ProjectService.GetProjectByID(ctx, id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, project)
}

func (s *Server) handleDeleteProject(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	if err := s.app.ProjectService.DeleteProject(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"id": id})
}

func (s *Server) handleGetBoard(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	board, err := s.app.ProjectService.GetBoard(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, board)
}
