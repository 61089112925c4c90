package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darshanbachhav0/Entrepreneur/pkg/helpers"
)

// Page is the envelope every template renders with: the page title, the
// identity resolved for this request, queued transient notices, and
// view-specific data.
type Page struct {
	Title    string
	Identity helpers.Identity
	Flashes  []helpers.Flash
	Data     gin.H
}

// HTML renders tmpl with the standard page envelope.
func HTML(c *gin.Context, status int, tmpl, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	c.HTML(status, tmpl, Page{
		Title:    title,
		Identity: helpers.IdentityFromContext(c),
		Flashes:  helpers.PopFlashes(c),
		Data:     data,
	})
}

// NotFound renders the generic 404 page.
func NotFound(c *gin.Context) {
	HTML(c, http.StatusNotFound, "error.html", "Not Found", gin.H{"Message": "The page you requested does not exist."})
}

// ServerError renders the generic failure page for storage or other
// external errors. Details stay in the logs.
func ServerError(c *gin.Context) {
	HTML(c, http.StatusInternalServerError, "error.html", "Something Went Wrong", gin.H{"Message": "Something went wrong. Please try again."})
}
