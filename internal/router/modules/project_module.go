package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/vijayshankarmb/PMS-Backend/internal/interface/http"
	"github.com/vijayshankarmb/PMS-Backend/internal/interface/middleware"
	"github.com/vijayshankarmb/PMS-Backend/pkg/helpers"
)

type ProjectModule struct {
	Handler *handlers.ProjectHandler
	JWT     *helpers.JWTManager
	RDB     *redis.Client
}

func NewProjectModule(h *handlers.ProjectHandler, jwt *helpers.JWTManager, rdb *redis.Client) *ProjectModule {
	return &ProjectModule{Handler: h, JWT: jwt, RDB: rdb}
}

func (m *ProjectModule) Register(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	projects.Use(middleware.Auth(m.JWT), middleware.RequireAdmin())
	projects.Use(middleware.RateLimit(m.RDB, 120, time.Minute, middleware.KeyByUserID()))
	{
		projects.POST("", m.Handler.Create)
		projects.GET("", m.Handler.List)
		projects.GET("/:id", m.Handler.Get)
		projects.PUT("/:id", m.Handler.Update)
		projects.DELETE("/:id", m.Handler.Delete)
	}
}
