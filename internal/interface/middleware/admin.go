package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vijayshankarmb/PMS-Backend/internal/domain/entity"
	"github.com/vijayshankarmb/PMS-Backend/pkg/response"
)

// RequireAdmin rejects callers whose verified role is not admin.
// Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if entity.Role(c.GetString(CtxUserRoleKey)) != entity.RoleAdmin {
			response.Error(c, http.StatusForbidden, "forbidden, admin access required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
