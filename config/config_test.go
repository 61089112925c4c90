package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "entrepreneur", cfg.AppName)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "entpr", cfg.MongoDB)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 30*24*time.Hour, cfg.RememberTTL)
	assert.Equal(t, int64(32<<20), cfg.UploadMaxBytes)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_DB", "entpr_test")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("COOKIE_SECURE", "true")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "entpr_test", cfg.MongoDB)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.CookieSecure)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("COOKIE_SECURE", "sure")

	cfg := Load()
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.False(t, cfg.CookieSecure)
}

func TestCORSOrigins(t *testing.T) {
	c := &Config{CORSAllowedOrigins: "https://a.example.com , https://b.example.com,"}
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, c.CORSOrigins())

	empty := &Config{}
	assert.Empty(t, empty.CORSOrigins())
}
