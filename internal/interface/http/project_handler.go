package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vijayshankarmb/PMS-Backend/internal/application"
	"github.com/vijayshankarmb/PMS-Backend/internal/domain/repository"
	"github.com/vijayshankarmb/PMS-Backend/internal/interface/middleware"
	"github.com/vijayshankarmb/PMS-Backend/pkg/response"
	"github.com/vijayshankarmb/PMS-Backend/pkg/validation"
)

type ProjectHandler struct {
	Svc    *application.ProjectService
	Logger *logrus.Logger
}

func NewProjectHandler(svc *application.ProjectService, logger *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{Svc: svc, Logger: logger}
}

type createProjectRequest struct {
	ProjectName        string `json:"projectName" binding:"required,min=1"`
	ProjectDescription string `json:"projectDescription" binding:"required,min=1"`
}

type updateProjectRequest struct {
	ProjectName        *string `json:"projectName" binding:"omitempty,min=1"`
	ProjectDescription *string `json:"projectDescription" binding:"omitempty,min=1"`
}

// Create POST /api/projects (admin)
func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "validation error", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), middleware.IdentityFrom(c), application.ProjectInput{
		Name:        req.ProjectName,
		Description: req.ProjectDescription,
	})
	if err != nil {
		h.fail(c, err, "create project failed")
		return
	}
	response.Success(c, http.StatusCreated, p, "project created successfully")
}

// List GET /api/projects (admin, scoped to owner)
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.Svc.List(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		h.fail(c, err, "list projects failed")
		return
	}
	response.Success(c, http.StatusOK, projects, "projects fetched successfully")
}

// Get GET /api/projects/:id (admin, owner)
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), middleware.IdentityFrom(c), id)
	if err != nil {
		h.fail(c, err, "get project failed")
		return
	}
	response.Success(c, http.StatusOK, p, "")
}

// Update PUT /api/projects/:id (admin, owner)
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "validation error", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Update(c.Request.Context(), middleware.IdentityFrom(c), id, repository.ProjectPatch{
		Name:        req.ProjectName,
		Description: req.ProjectDescription,
	})
	if err != nil {
		h.fail(c, err, "update project failed")
		return
	}
	response.Success(c, http.StatusOK, p, "project updated successfully")
}

// Delete DELETE /api/projects/:id (admin, owner)
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.IdentityFrom(c), id); err != nil {
		h.fail(c, err, "delete project failed")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "project deleted successfully")
}

// projectID validates the :id path param. A malformed id cannot match any
// record, so it gets the same 404 as a foreign or missing project.
func projectID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if uuid.Validate(id) != nil {
		response.Error(c, http.StatusNotFound, "project not found", nil)
		return "", false
	}
	return id, true
}

func (h *ProjectHandler) fail(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, application.ErrForbidden):
		response.Error(c, http.StatusForbidden, "forbidden, admin access required", nil)
	case errors.Is(err, application.ErrNotFound):
		response.Error(c, http.StatusNotFound, "project not found", nil)
	default:
		h.Logger.WithError(err).Error(logMsg)
		response.Error(c, http.StatusInternalServerError, "server error", nil)
	}
}
