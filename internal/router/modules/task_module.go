package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/vijayshankarmb/PMS-Backend/internal/interface/http"
	"github.com/vijayshankarmb/PMS-Backend/internal/interface/middleware"
	"github.com/vijayshankarmb/PMS-Backend/pkg/helpers"
)

type TaskModule struct {
	Handler *handlers.TaskHandler
	JWT     *helpers.JWTManager
	RDB     *redis.Client
}

func NewTaskModule(h *handlers.TaskHandler, jwt *helpers.JWTManager, rdb *redis.Client) *TaskModule {
	return &TaskModule{Handler: h, JWT: jwt, RDB: rdb}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	admin := middleware.RequireAdmin()

	tasks := rg.Group("/tasks")
	tasks.Use(middleware.Auth(m.JWT))
	tasks.Use(middleware.RateLimit(m.RDB, 120, time.Minute, middleware.KeyByUserID()))
	{
		tasks.POST("", admin, m.Handler.Create)
		tasks.GET("", m.Handler.List)
		tasks.GET("/search", m.Handler.Search)
		tasks.GET("/:id", m.Handler.Get)
		tasks.PUT("/status/:id", m.Handler.UpdateStatus)
		tasks.PUT("/:id", admin, m.Handler.Update)
		tasks.DELETE("/:id", admin, m.Handler.Delete)
		tasks.POST("/:id/attachments", m.Handler.AddAttachment)
	}
}
