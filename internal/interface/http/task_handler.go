package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vijayshankarmb/PMS-Backend/internal/application"
	"github.com/vijayshankarmb/PMS-Backend/internal/domain/entity"
	"github.com/vijayshankarmb/PMS-Backend/internal/interface/middleware"
	"github.com/vijayshankarmb/PMS-Backend/pkg/response"
	"github.com/vijayshankarmb/PMS-Backend/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	TaskName        string `json:"taskName" binding:"required,min=3"`
	TaskDescription string `json:"taskDescription" binding:"required,min=5"`
	ProjectID       string `json:"projectId" binding:"required,uuid"`
	AssignedTo      string `json:"assignedTo" binding:"required,uuid"`
}

type updateTaskRequest struct {
	TaskName        *string `json:"taskName" binding:"omitempty,min=3"`
	TaskDescription *string `json:"taskDescription" binding:"omitempty,min=5"`
	AssignedTo      *string `json:"assignedTo" binding:"omitempty,uuid"`
}

type updateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in-progress completed"`
}

// Create POST /api/tasks (admin, must own the referenced project)
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "validation error", validation.ToDetails(err))
		return
	}

	t, err := h.Svc.Create(c.Request.Context(), middleware.IdentityFrom(c), application.CreateTaskInput{
		Name:        req.TaskName,
		Description: req.TaskDescription,
		ProjectID:   req.ProjectID,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		h.fail(c, err, "create task failed")
		return
	}
	response.Success(c, http.StatusCreated, t, "task created successfully")
}

// List GET /api/tasks (admin: own created tasks; others: assigned tasks)
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.Svc.List(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		h.fail(c, err, "list tasks failed")
		return
	}
	response.Success(c, http.StatusOK, tasks, "tasks fetched successfully")
}

// Search GET /api/tasks/search?q= (scoped like List)
func (h *TaskHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "validation error", map[string]string{"q": "is required"})
		return
	}
	hits, err := h.Svc.Search(c.Request.Context(), middleware.IdentityFrom(c), q, 0)
	if err != nil {
		h.fail(c, err, "search tasks failed")
		return
	}
	response.Success(c, http.StatusOK, hits, "")
}

// Get GET /api/tasks/:id (admin or assignee)
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	t, err := h.Svc.Get(c.Request.Context(), middleware.IdentityFrom(c), id)
	if err != nil {
		h.fail(c, err, "get task failed")
		return
	}
	response.Success(c, http.StatusOK, t, "")
}

// Update PUT /api/tasks/:id (creating admin; status not mutable here)
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "validation error", validation.ToDetails(err))
		return
	}

	t, err := h.Svc.Update(c.Request.Context(), middleware.IdentityFrom(c), id, application.UpdateTaskInput{
		Name:        req.TaskName,
		Description: req.TaskDescription,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		h.fail(c, err, "update task failed")
		return
	}
	response.Success(c, http.StatusOK, t, "task updated successfully")
}

// UpdateStatus PUT /api/tasks/status/:id (admin or assignee)
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	var req updateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "validation error", validation.ToDetails(err))
		return
	}

	t, err := h.Svc.UpdateStatus(c.Request.Context(), middleware.IdentityFrom(c), id, entity.Status(req.Status))
	if err != nil {
		h.fail(c, err, "update task status failed")
		return
	}
	response.Success(c, http.StatusOK, t, "task status updated successfully")
}

// Delete DELETE /api/tasks/:id (creating admin)
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.IdentityFrom(c), id); err != nil {
		h.fail(c, err, "delete task failed")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "task deleted successfully")
}

// AddAttachment POST /api/tasks/:id/attachments (admin or assignee)
func (h *TaskHandler) AddAttachment(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "validation error", map[string]string{"file": "is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.fail(c, err, "open uploaded file failed")
		return
	}
	defer func() { _ = f.Close() }()

	a, err := h.Svc.AddAttachment(c.Request.Context(), middleware.IdentityFrom(c), id,
		fh.Filename, fh.Header.Get("Content-Type"), f)
	if err != nil {
		if errors.Is(err, application.ErrStorageDisabled) {
			response.Error(c, http.StatusNotImplemented, "attachment storage not configured", nil)
			return
		}
		h.fail(c, err, "upload attachment failed")
		return
	}
	response.Success(c, http.StatusCreated, a, "attachment uploaded successfully")
}

func taskID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if uuid.Validate(id) != nil {
		response.Error(c, http.StatusNotFound, "task not found", nil)
		return "", false
	}
	return id, true
}

func (h *TaskHandler) fail(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, application.ErrForbidden):
		response.Error(c, http.StatusForbidden, "forbidden, not authorized to access this task", nil)
	case errors.Is(err, application.ErrNotFound):
		response.Error(c, http.StatusNotFound, "task not found", nil)
	case errors.Is(err, application.ErrAssigneeNotFound):
		response.Error(c, http.StatusBadRequest, "validation error", map[string]string{"assignedTo": "user does not exist"})
	default:
		h.Logger.WithError(err).Error(logMsg)
		response.Error(c, http.StatusInternalServerError, "server error", nil)
	}
}
