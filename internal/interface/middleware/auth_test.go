package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijayshankarmb/PMS-Backend/internal/domain/entity"
	"github.com/vijayshankarmb/PMS-Backend/pkg/helpers"
)

func authTestRouter(jwt *helpers.JWTManager, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{Auth(jwt)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		id := IdentityFrom(c)
		c.JSON(http.StatusOK, gin.H{"userId": id.UserID, "role": id.Role})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuth_MissingCookie(t *testing.T) {
	r := authTestRouter(helpers.NewJWTManager("secret", time.Hour))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token is missing")
}

func TestAuth_InvalidToken(t *testing.T) {
	r := authTestRouter(helpers.NewJWTManager("secret", time.Hour))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.AccessTokenCookie, Value: "garbage"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	expired := helpers.NewJWTManager("secret", -time.Minute)
	token, _, err := expired.Generate("u1", entity.RoleUser)
	require.NoError(t, err)

	r := authTestRouter(helpers.NewJWTManager("secret", time.Hour))
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.AccessTokenCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	token, _, err := jwt.Generate("u1", entity.RoleAdmin)
	require.NoError(t, err)

	r := authTestRouter(jwt)
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.AccessTokenCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":"u1"`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestRequireAdmin(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := authTestRouter(jwt, RequireAdmin())

	adminToken, _, err := jwt.Generate("a1", entity.RoleAdmin)
	require.NoError(t, err)
	userToken, _, err := jwt.Generate("u1", entity.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.AccessTokenCookie, Value: adminToken})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.AccessTokenCookie, Value: userToken})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "admin access required")
}
