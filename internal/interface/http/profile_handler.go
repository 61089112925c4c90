package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/darshanbachhav0/Entrepreneur/internal/application"
	"github.com/darshanbachhav0/Entrepreneur/pkg/helpers"
	"github.com/darshanbachhav0/Entrepreneur/pkg/response"
)

type ProfileHandler struct {
	Ideas  *application.IdeaService
	Logger *logrus.Logger
}

func NewProfileHandler(ideas *application.IdeaService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Ideas: ideas, Logger: logger}
}

// Profile GET /profile — the ideas authored by the current identity, matched
// by the stored author snapshot.
func (h *ProfileHandler) Profile(c *gin.Context) {
	id := helpers.IdentityFromContext(c)
	ideas, err := h.Ideas.ListByAuthor(c.Request.Context(), id)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.HTML(c, http.StatusOK, "profile.html", "Profile", gin.H{"Ideas": ideas})
}
