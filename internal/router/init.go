package router

import (
	"github.com/darshanbachhav0/Entrepreneur/internal/application"
	"github.com/darshanbachhav0/Entrepreneur/internal/container"
	"github.com/darshanbachhav0/Entrepreneur/internal/infrastructure/mongodb"
	handlers "github.com/darshanbachhav0/Entrepreneur/internal/interface/http"
	"github.com/darshanbachhav0/Entrepreneur/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it. Called once during startup.
func InitModules(r *Registry) {
	db := container.GetDatabase()
	logger := container.GetLogger()

	users := mongodb.NewUserRepository(db)
	ideas := mongodb.NewIdeaRepository(db)
	posts := mongodb.NewPostRepository(db)

	authSvc := application.NewAuthService(users, logger)
	ideaSvc := application.NewIdeaService(ideas, logger)
	postSvc := application.NewPostService(posts, container.GetUploader(), logger)

	r.Add(modules.NewHome(handlers.NewHomeHandler()))
	r.Add(modules.NewAuth(handlers.NewAuthHandler(authSvc, container.GetSessions(), logger)))
	r.Add(modules.NewIdea(
		handlers.NewIdeaHandler(ideaSvc, logger),
		handlers.NewProfileHandler(ideaSvc, logger),
	))
	r.Add(modules.NewPost(handlers.NewPostHandler(postSvc, logger)))
}
