package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/darshanbachhav0/Entrepreneur/pkg/helpers"
)

// Identity resolves the session into an Identity on every request and stores
// it in the Gin context. Anonymous requests carry the anonymous sentinel;
// this middleware never aborts.
func Identity(sessions *helpers.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(helpers.CtxIdentityKey, sessions.Current(c))
		c.Next()
	}
}

// RequireAuth blocks anonymous access to identity-scoped routes. It
// redirects to the login page, preserving the originally requested
// destination so it can be resumed after login.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if helpers.IdentityFromContext(c).IsAnonymous() {
			next := c.Request.URL.RequestURI()
			c.Redirect(http.StatusSeeOther, "/login?next="+url.QueryEscape(next))
			c.Abort()
			return
		}
		c.Next()
	}
}
