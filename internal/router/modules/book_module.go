package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shashankrushiya/bookstore-api/internal/container"
	handlers "github.com/shashankrushiya/bookstore-api/internal/interface/http"
	"github.com/shashankrushiya/bookstore-api/internal/interface/middleware"
	"github.com/shashankrushiya/bookstore-api/pkg/helpers"
)

// BookModule wires the protected catalog routes behind the auth middleware.
// Protected: POST/GET /books/, GET/PUT/DELETE /books/:id,
// GET /books/search, POST /books/:id/cover

type BookModule struct {
	Handler *handlers.BookHandler
	JWT     *helpers.JWTManager
}

func NewBookModule(h *handlers.BookHandler, jwt *helpers.JWTManager) *BookModule {
	return &BookModule{Handler: h, JWT: jwt}
}

func (m *BookModule) Register(rg *gin.RouterGroup) {
	books := rg.Group("/books")
	books.Use(middleware.Auth(m.JWT))
	books.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyBySubject(), nil),
	)
	{
		books.POST("/", m.Handler.Create)
		books.GET("/", m.Handler.List)
		books.GET("/search", m.Handler.Search)
		books.GET("/:id", m.Handler.Get)
		books.PUT("/:id", m.Handler.Update)
		books.DELETE("/:id", m.Handler.Delete)
		books.POST("/:id/cover", m.Handler.UploadCover)
	}
}
