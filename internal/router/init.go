package router

import (
	"github.com/vijayshankarmb/PMS-Backend/internal/application"
	"github.com/vijayshankarmb/PMS-Backend/internal/container"
	pginfra "github.com/vijayshankarmb/PMS-Backend/internal/infrastructure/postgres"
	handlers "github.com/vijayshankarmb/PMS-Backend/internal/interface/http"
	"github.com/vijayshankarmb/PMS-Backend/internal/router/modules"
)

// InitModules wires repositories, services and handlers from the container
// singletons and registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	projectRepo := pginfra.NewProjectRepository(pool)
	taskRepo := pginfra.NewTaskRepository(pool)

	authSvc := application.NewAuthService(userRepo, logger)
	userSvc := application.NewUserService(userRepo)
	projectSvc := application.NewProjectService(projectRepo, logger)

	taskSvc := application.NewTaskService(taskRepo, projectRepo, userRepo, logger)
	taskSvc.Rabbit = container.GetRabbitPub()
	taskSvc.ES = container.GetES()
	taskSvc.ESIndex = cfg.ESTasksIndex
	taskSvc.GCS = container.GetGCS()
	taskSvc.GCSBucket = cfg.GCSBucket

	jwt := container.GetJWT()
	rdb := container.GetRedis()

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, jwt, logger, cfg.CookieDomain, cfg.CookieSecure), jwt, rdb))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), jwt, rdb))
	r.Add(modules.NewProjectModule(handlers.NewProjectHandler(projectSvc, logger), jwt, rdb))
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger), jwt, rdb))
}
