package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vijayshankarmb/PMS-Backend/internal/application"
	"github.com/vijayshankarmb/PMS-Backend/internal/domain/entity"
	"github.com/vijayshankarmb/PMS-Backend/pkg/helpers"
	"github.com/vijayshankarmb/PMS-Backend/pkg/response"
)

const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
)

// Auth reads the access_token cookie, verifies it, and injects the caller
// identity into the Gin context. Verification is local; no store lookups.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.AccessTokenCookie)
		if err != nil || token == "" {
			response.Error(c, http.StatusUnauthorized, "unauthorized, token is missing", nil)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "unauthorized", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserRoleKey, string(claims.Role))
		c.Next()
	}
}

// IdentityFrom rebuilds the caller identity set by Auth.
func IdentityFrom(c *gin.Context) application.Identity {
	return application.Identity{
		UserID: c.GetString(CtxUserIDKey),
		Role:   entity.Role(c.GetString(CtxUserRoleKey)),
	}
}
