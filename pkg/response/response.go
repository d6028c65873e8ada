package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the stable envelope for every endpoint:
// {success, message?, data?, errors?}.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// Success writes a success envelope with the given status.
func Success[T any](c *gin.Context, status int, data T, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, APIResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error writes a failure envelope with the given status.
func Error(c *gin.Context, status int, message string, errs any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, APIResponse[any]{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}
