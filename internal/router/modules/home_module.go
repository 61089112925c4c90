package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/darshanbachhav0/Entrepreneur/internal/interface/http"
)

// HomeModule serves the public landing page.
type HomeModule struct {
	Handler *handlers.HomeHandler
}

func NewHome(h *handlers.HomeHandler) *HomeModule {
	return &HomeModule{Handler: h}
}

func (m *HomeModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Home)
}
