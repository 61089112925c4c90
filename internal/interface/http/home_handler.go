package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darshanbachhav0/Entrepreneur/pkg/response"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler { return &HomeHandler{} }

// Home GET /
func (h *HomeHandler) Home(c *gin.Context) {
	response.HTML(c, http.StatusOK, "home.html", "Home", nil)
}
