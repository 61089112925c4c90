package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/darshanbachhav0/Entrepreneur/internal/interface/http"
	"github.com/darshanbachhav0/Entrepreneur/internal/interface/middleware"
)

// PostModule wires the posts page behind the auth guard.
type PostModule struct {
	Handler *handlers.PostHandler
}

func NewPost(h *handlers.PostHandler) *PostModule {
	return &PostModule{Handler: h}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth())
	{
		auth.GET("/post", m.Handler.Page)
		auth.POST("/post", m.Handler.Create)
	}
}
