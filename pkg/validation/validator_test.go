package validation

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	Username        string `form:"username" binding:"required,min=2,max=20"`
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=Password"`
}

func bindForm(t *testing.T, values url.Values, out any) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.ShouldBind(out)
}

func TestToDetailsFieldMessages(t *testing.T) {
	Init()

	var form registerForm
	err := bindForm(t, url.Values{
		"username":         {"x"},
		"email":            {"not-an-email"},
		"password":         {"pw"},
		"confirm_password": {"different"},
	}, &form)
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be at least 2 characters long", details["username"])
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Equal(t, "must be equal to Password", details["confirm_password"])
}

func TestToDetailsRequired(t *testing.T) {
	Init()

	var form registerForm
	err := bindForm(t, url.Values{}, &form)
	require.Error(t, err)

	details := ToDetails(err)
	// Every failing field is reported, keyed by its form name.
	assert.Equal(t, "is required", details["username"])
	assert.Equal(t, "is required", details["email"])
	assert.Equal(t, "is required", details["password"])
	assert.Equal(t, "is required", details["confirm_password"])
}

func TestToDetailsNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}
