// Package session implements the cookie-based session used to scope all
// meal queries. The session is just the owning user's id stored in a
// cookie; nothing is signed or verified server-side. Keeping it behind this
// package means the cookie scheme can later be swapped for a real token
// without touching the handlers.
package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName is the session cookie set on login.
	CookieName = "sessionId"

	// MaxAge is the client-side cookie lifetime in seconds (7 days).
	MaxAge = 7 * 24 * 60 * 60

	cookiePath = "/"

	// contextKey is where Require stores the session id on the gin context.
	contextKey = "sessionID"
)

// FromRequest returns the session id carried by the request cookie, if any.
func FromRequest(c *gin.Context) (string, bool) {
	value, err := c.Cookie(CookieName)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

// Set attaches a session cookie for the given user id.
func Set(c *gin.Context, userID string) {
	c.SetCookie(CookieName, userID, MaxAge, cookiePath, "", false, true)
}

// Clear expires the session cookie.
func Clear(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, cookiePath, "", false, true)
}

// Require is a middleware that rejects requests without a session cookie.
// It only checks presence: the cookie value is used as-is to scope queries
// and is never verified against the users table.
func Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := FromRequest(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(contextKey, id)
		c.Next()
	}
}

// UserID returns the session id stored by Require. It falls back to reading
// the cookie directly so handlers also work without the middleware.
func UserID(c *gin.Context) string {
	if id, ok := c.Get(contextKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	id, _ := FromRequest(c)
	return id
}
