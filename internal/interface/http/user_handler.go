package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vijayshankarmb/PMS-Backend/internal/application"
	"github.com/vijayshankarmb/PMS-Backend/internal/interface/middleware"
	"github.com/vijayshankarmb/PMS-Backend/pkg/response"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// List GET /api/users (admin)
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		if errors.Is(err, application.ErrForbidden) {
			response.Error(c, http.StatusForbidden, "forbidden, admin access required", nil)
			return
		}
		h.Logger.WithError(err).Error("list users failed")
		response.Error(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusOK, users, "users fetched successfully")
}
