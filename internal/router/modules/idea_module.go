package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/darshanbachhav0/Entrepreneur/internal/interface/http"
	"github.com/darshanbachhav0/Entrepreneur/internal/interface/middleware"
)

// IdeaModule wires the idea workflows and the profile page. Every route is
// identity-scoped and sits behind the auth guard.
type IdeaModule struct {
	Ideas   *handlers.IdeaHandler
	Profile *handlers.ProfileHandler
}

func NewIdea(ideas *handlers.IdeaHandler, profile *handlers.ProfileHandler) *IdeaModule {
	return &IdeaModule{Ideas: ideas, Profile: profile}
}

func (m *IdeaModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth())
	{
		auth.GET("/profile", m.Profile.Profile)
		auth.GET("/submit-idea", m.Ideas.ShowSubmit)
		auth.POST("/submit-idea", m.Ideas.Submit)
		auth.GET("/explore-ideas", m.Ideas.Explore)
		auth.POST("/explore-ideas", m.Ideas.ExploreFiltered)
		auth.GET("/idea/:id", m.Ideas.Detail)
		auth.POST("/idea/:id", m.Ideas.Comment)
		auth.POST("/comment/:id", m.Ideas.Comment)
		auth.GET("/upvote/:id", m.Ideas.Upvote)
	}
}
