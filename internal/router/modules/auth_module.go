package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/darshanbachhav0/Entrepreneur/internal/container"
	handlers "github.com/darshanbachhav0/Entrepreneur/internal/interface/http"
	"github.com/darshanbachhav0/Entrepreneur/internal/interface/middleware"
)

// AuthModule wires the public account routes.
// GET/POST /register, GET/POST /login, GET /logout.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuth(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints are rate limited per IP; private addresses bypass.
	limiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.GET("/register", m.Handler.ShowRegister)
	rg.POST("/register", limiter, m.Handler.Register)
	rg.GET("/login", m.Handler.ShowLogin)
	rg.POST("/login", limiter, m.Handler.Login)
	rg.GET("/logout", m.Handler.Logout)
}
