package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/darshanbachhav0/Entrepreneur/internal/application"
	"github.com/darshanbachhav0/Entrepreneur/internal/domain/repository"
	"github.com/darshanbachhav0/Entrepreneur/pkg/helpers"
	"github.com/darshanbachhav0/Entrepreneur/pkg/response"
)

type IdeaHandler struct {
	Ideas  *application.IdeaService
	Logger *logrus.Logger
}

func NewIdeaHandler(ideas *application.IdeaService, logger *logrus.Logger) *IdeaHandler {
	return &IdeaHandler{Ideas: ideas, Logger: logger}
}

type ideaForm struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Domain      string `form:"domain" binding:"required"`
}

type filterForm struct {
	Domain string `form:"domain" binding:"required"`
}

type commentForm struct {
	Text string `form:"comment_text" binding:"required"`
}

// ShowSubmit GET /submit-idea
func (h *IdeaHandler) ShowSubmit(c *gin.Context) {
	response.HTML(c, http.StatusOK, "submit_idea.html", "Submit Idea", nil)
}

// Submit POST /submit-idea
func (h *IdeaHandler) Submit(c *gin.Context) {
	var form ideaForm
	if err := c.ShouldBind(&form); err != nil {
		flashFieldErrors(c, err)
		response.HTML(c, http.StatusOK, "submit_idea.html", "Submit Idea", gin.H{
			"Title":       form.Title,
			"Description": form.Description,
			"Domain":      form.Domain,
		})
		return
	}
	id := helpers.IdentityFromContext(c)
	if _, err := h.Ideas.Submit(c.Request.Context(), id, form.Title, form.Description, form.Domain); err != nil {
		response.ServerError(c)
		return
	}
	helpers.AddFlash(c, "success", "Idea submitted successfully!")
	c.Redirect(http.StatusSeeOther, "/submit-idea")
}

// Explore GET /explore-ideas
func (h *IdeaHandler) Explore(c *gin.Context) {
	ideas, domains, err := h.Ideas.Explore(c.Request.Context(), "")
	if err != nil {
		response.ServerError(c)
		return
	}
	response.HTML(c, http.StatusOK, "explore_ideas.html", "Explore Ideas", gin.H{
		"Ideas":    ideas,
		"Domains":  domains,
		"Selected": "",
	})
}

// ExploreFiltered POST /explore-ideas
func (h *IdeaHandler) ExploreFiltered(c *gin.Context) {
	var form filterForm
	if err := c.ShouldBind(&form); err != nil {
		flashFieldErrors(c, err)
		c.Redirect(http.StatusSeeOther, "/explore-ideas")
		return
	}
	ideas, domains, err := h.Ideas.Explore(c.Request.Context(), form.Domain)
	if err != nil {
		if errors.Is(err, application.ErrInvalidDomain) {
			helpers.AddFlash(c, "danger", "domain must be one of the available choices")
			c.Redirect(http.StatusSeeOther, "/explore-ideas")
			return
		}
		response.ServerError(c)
		return
	}
	response.HTML(c, http.StatusOK, "explore_ideas.html", "Explore Ideas", gin.H{
		"Ideas":    ideas,
		"Domains":  domains,
		"Selected": form.Domain,
	})
}

// Detail GET /idea/:id
func (h *IdeaHandler) Detail(c *gin.Context) {
	idea, err := h.Ideas.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}
	response.HTML(c, http.StatusOK, "idea_detail.html", idea.Title, gin.H{"Idea": idea})
}

// Comment POST /comment/:id and POST /idea/:id
func (h *IdeaHandler) Comment(c *gin.Context) {
	ideaID := c.Param("id")
	var form commentForm
	if err := c.ShouldBind(&form); err != nil {
		flashFieldErrors(c, err)
		c.Redirect(http.StatusSeeOther, "/idea/"+ideaID)
		return
	}
	id := helpers.IdentityFromContext(c)
	if err := h.Ideas.AddComment(c.Request.Context(), id, ideaID, form.Text); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.AddFlash(c, "danger", "Idea not found.")
		} else {
			response.ServerError(c)
			return
		}
	} else {
		helpers.AddFlash(c, "success", "Your comment has been added!")
	}
	c.Redirect(http.StatusSeeOther, "/idea/"+ideaID)
}

// Upvote GET /upvote/:id
func (h *IdeaHandler) Upvote(c *gin.Context) {
	ideaID := c.Param("id")
	if err := h.Ideas.Upvote(c.Request.Context(), ideaID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}
	c.Redirect(http.StatusSeeOther, "/idea/"+ideaID)
}
