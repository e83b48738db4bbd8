package router

import (
	"github.com/shashankrushiya/bookstore-api/internal/application"
	"github.com/shashankrushiya/bookstore-api/internal/container"
	pginfra "github.com/shashankrushiya/bookstore-api/internal/infrastructure/postgres"
	handlers "github.com/shashankrushiya/bookstore-api/internal/interface/http"
	"github.com/shashankrushiya/bookstore-api/internal/router/modules"
)

func buildAuthModule() *modules.AuthModule {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	svc := application.NewAuthService(
		repo,
		container.GetJWT(),
		container.GetLogger(),
		container.GetRabbitPub(),
		container.GetConfig().MailSendEnabled,
	)
	return modules.NewAuthModule(handlers.NewAuthHandler(svc, container.GetLogger()))
}

func buildBookModule() *modules.BookModule {
	repo := pginfra.NewBookRepository(container.GetPGPool())
	svc := application.NewBookService(
		repo,
		container.GetGCS(),
		container.GetConfig().GCSBucket,
		container.GetLogger(),
		container.GetES(),
		container.GetConfig().ESBooksIndex,
	)
	return modules.NewBookModule(handlers.NewBookHandler(svc, container.GetLogger()), container.GetJWT())
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	r.Add(buildAuthModule())
	r.Add(buildBookModule())
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
