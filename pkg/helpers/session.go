package helpers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const SessionCookie = "session_token"

// Identity is the authenticated user resolved from the session, or the
// anonymous sentinel when no valid session exists.
type Identity struct {
	ID       string
	Username string
	Email    string
}

var Anonymous = Identity{}

func (i Identity) IsAnonymous() bool { return i.ID == "" }

// CtxIdentityKey is the gin context key under which the identity middleware
// stores the resolved Identity for the request.
const CtxIdentityKey = "identity"

// IdentityFromContext returns the identity resolved for this request, or
// Anonymous when the identity middleware has not run or found no session.
func IdentityFromContext(c *gin.Context) Identity {
	if v, ok := c.Get(CtxIdentityKey); ok {
		if id, ok := v.(Identity); ok {
			return id
		}
	}
	return Anonymous
}

func sessionKey(sid string) string { return "user:session:" + sid }

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionManager establishes and resolves server-side sessions. The session
// record lives in Redis; the cookie only carries an HS256-signed session id,
// so a tampered cookie fails signature verification and resolves anonymous.
type SessionManager struct {
	Redis       *redis.Client
	secret      []byte
	SessionTTL  time.Duration
	RememberTTL time.Duration
	Domain      string
	Secure      bool
}

func NewSessionManager(rdb *redis.Client, secret string, sessionTTL, rememberTTL time.Duration, domain string, secure bool) *SessionManager {
	return &SessionManager{
		Redis:       rdb,
		secret:      []byte(secret),
		SessionTTL:  sessionTTL,
		RememberTTL: rememberTTL,
		Domain:      domain,
		Secure:      secure,
	}
}

// Issue creates a session bound to id and sets the signed cookie. With
// remember the session outlives the browser session by RememberTTL;
// otherwise the cookie is a browser-session cookie and the server-side
// record expires after SessionTTL.
func (m *SessionManager) Issue(c *gin.Context, id Identity, remember bool) error {
	sid := uuid.NewString()
	ttl := m.SessionTTL
	if remember {
		ttl = m.RememberTTL
	}

	key := sessionKey(sid)
	pipe := m.Redis.Pipeline()
	pipe.HSet(c.Request.Context(), key, map[string]any{
		"user_id":    id.ID,
		"username":   id.Username,
		"email":      id.Email,
		"created_at": time.Now().UTC().Format(time.RFC3339Nano),
	})
	pipe.Expire(c.Request.Context(), key, ttl)
	if _, err := pipe.Exec(c.Request.Context()); err != nil {
		return err
	}

	exp := time.Now().Add(ttl)
	claims := &sessionClaims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return err
	}

	maxAge := 0 // browser-session cookie
	if remember {
		maxAge = int(ttl.Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, maxAge, "/", m.Domain, m.Secure, true)
	return nil
}

// Current resolves the identity for this request. Any failure along the way
// (missing cookie, bad signature, expired or deleted session) is anonymous,
// never an error.
func (m *SessionManager) Current(c *gin.Context) Identity {
	token, err := c.Cookie(SessionCookie)
	if err != nil || token == "" {
		return Anonymous
	}
	sid, err := m.parseSessionID(token)
	if err != nil {
		return Anonymous
	}
	data, err := m.Redis.HGetAll(c.Request.Context(), sessionKey(sid)).Result()
	if err != nil || len(data) == 0 {
		return Anonymous
	}
	return Identity{ID: data["user_id"], Username: data["username"], Email: data["email"]}
}

// Clear invalidates the current session immediately.
func (m *SessionManager) Clear(c *gin.Context) {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		if sid, err := m.parseSessionID(token); err == nil {
			m.Redis.Del(c.Request.Context(), sessionKey(sid))
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", m.Domain, m.Secure, true)
}

func (m *SessionManager) parseSessionID(token string) (string, error) {
	claims := &sessionClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !tkn.Valid || claims.SessionID == "" {
		return "", errors.New("invalid session token")
	}
	return claims.SessionID, nil
}
