package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/darshanbachhav0/Entrepreneur/internal/application"
	"github.com/darshanbachhav0/Entrepreneur/pkg/helpers"
	"github.com/darshanbachhav0/Entrepreneur/pkg/response"
	"github.com/darshanbachhav0/Entrepreneur/pkg/validation"
)

type AuthHandler struct {
	Auth     *application.AuthService
	Sessions *helpers.SessionManager
	Logger   *logrus.Logger
}

func NewAuthHandler(auth *application.AuthService, sessions *helpers.SessionManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Sessions: sessions, Logger: logger}
}

type registerForm struct {
	Username        string `form:"username" binding:"required,min=2,max=20"`
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=Password"`
}

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
	Remember bool   `form:"remember"`
}

// flashFieldErrors surfaces every field error as a transient danger notice.
func flashFieldErrors(c *gin.Context, err error) {
	for field, msg := range validation.ToDetails(err) {
		helpers.AddFlash(c, "danger", field+" "+msg)
	}
}

// ShowRegister GET /register
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	if !helpers.IdentityFromContext(c).IsAnonymous() {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	response.HTML(c, http.StatusOK, "register.html", "Register", nil)
}

// Register POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	if !helpers.IdentityFromContext(c).IsAnonymous() {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		flashFieldErrors(c, err)
		response.HTML(c, http.StatusOK, "register.html", "Register", gin.H{
			"Username": form.Username,
			"Email":    form.Email,
		})
		return
	}
	if _, err := h.Auth.Register(c.Request.Context(), form.Username, form.Email, form.Password); err != nil {
		response.ServerError(c)
		return
	}
	// Registering never logs the caller in.
	helpers.AddFlash(c, "success", "Your account has been created! You can now log in.")
	c.Redirect(http.StatusSeeOther, "/login")
}

// ShowLogin GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if !helpers.IdentityFromContext(c).IsAnonymous() {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	response.HTML(c, http.StatusOK, "login.html", "Login", gin.H{"Next": c.Query("next")})
}

// Login POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	if !helpers.IdentityFromContext(c).IsAnonymous() {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		flashFieldErrors(c, err)
		response.HTML(c, http.StatusOK, "login.html", "Login", gin.H{
			"Email": form.Email,
			"Next":  c.Query("next"),
		})
		return
	}

	u, err := h.Auth.Authenticate(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			// Deliberately vague: never reveal whether email or password was wrong.
			helpers.AddFlash(c, "danger", "Login unsuccessful. Please check email and password")
			response.HTML(c, http.StatusOK, "login.html", "Login", gin.H{
				"Email": form.Email,
				"Next":  c.Query("next"),
			})
			return
		}
		response.ServerError(c)
		return
	}

	id := helpers.Identity{ID: u.ID.Hex(), Username: u.Username, Email: u.Email}
	if err := h.Sessions.Issue(c, id, form.Remember); err != nil {
		h.Logger.WithError(err).Error("issue session failed")
		response.ServerError(c)
		return
	}
	c.Redirect(http.StatusSeeOther, safeNext(c.Query("next")))
}

// Logout GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Sessions.Clear(c)
	c.Redirect(http.StatusSeeOther, "/")
}

// safeNext resumes the originally requested destination after login, but
// only for local paths.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
