package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/darshanbachhav0/Entrepreneur/internal/application"
	"github.com/darshanbachhav0/Entrepreneur/pkg/helpers"
	"github.com/darshanbachhav0/Entrepreneur/pkg/response"
)

type PostHandler struct {
	Posts  *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(posts *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Posts: posts, Logger: logger}
}

type postForm struct {
	Content string `form:"content" binding:"required"`
}

// Page GET /post
func (h *PostHandler) Page(c *gin.Context) {
	posts, err := h.Posts.List(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}
	response.HTML(c, http.StatusOK, "post.html", "Post Something", gin.H{"Posts": posts})
}

// Create POST /post
func (h *PostHandler) Create(c *gin.Context) {
	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		flashFieldErrors(c, err)
		c.Redirect(http.StatusSeeOther, "/post")
		return
	}

	var media *application.MediaUpload
	if fh, err := c.FormFile("file"); err == nil && fh != nil && fh.Filename != "" {
		f, err := fh.Open()
		if err != nil {
			h.Logger.WithError(err).Warn("open uploaded file failed")
			response.ServerError(c)
			return
		}
		defer func() { _ = f.Close() }()
		media = &application.MediaUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Reader:      f,
		}
	}

	id := helpers.IdentityFromContext(c)
	if _, err := h.Posts.Create(c.Request.Context(), id, form.Content, media); err != nil {
		response.ServerError(c)
		return
	}
	helpers.AddFlash(c, "success", "Post submitted successfully!")
	c.Redirect(http.StatusSeeOther, "/post")
}
