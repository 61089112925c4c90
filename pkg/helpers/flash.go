package helpers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// Flash is a transient notice rendered on the next page. Level matches the
// presentation classes: "success" or "danger".
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// AddFlash queues a notice for the next rendered page. Notices ride in a
// short-lived cookie so they survive the redirect after a form post.
func AddFlash(c *gin.Context, level, message string) {
	flashes := readFlashes(c)
	flashes = append(flashes, Flash{Level: level, Message: message})
	c.Set("pending_flashes", flashes)
	b, err := json.Marshal(flashes)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, base64.RawURLEncoding.EncodeToString(b), 300, "/", "", false, true)
}

// PopFlashes returns the queued notices and clears them.
func PopFlashes(c *gin.Context) []Flash {
	flashes := readFlashes(c)
	if len(flashes) > 0 {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	}
	return flashes
}

func readFlashes(c *gin.Context) []Flash {
	// A value set earlier in this request wins over the inbound cookie.
	if v, ok := c.Get("pending_flashes"); ok {
		if f, ok := v.([]Flash); ok {
			return f
		}
	}
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal(b, &flashes); err != nil {
		return nil
	}
	return flashes
}
