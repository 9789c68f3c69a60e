package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "cart_session"

// Session key lifetime. The cart has no expiry of its own; the session
// cookie's lifetime governs it.
const sessionMaxAge = 30 * 24 * 60 * 60

// SessionMiddleware provisions the anonymous cart session key before any
// handler that reads cart state. A client-supplied session_key query
// parameter wins over the cookie so shared catalogue links keep working.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Query("session_key")
		if key == "" {
			if cookie, err := c.Request.Cookie(sessionCookie); err == nil {
				key = cookie.Value
			}
		}
		if key == "" {
			key = uuid.NewString()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     sessionCookie,
				Value:    key,
				Path:     "/",
				MaxAge:   sessionMaxAge,
				HttpOnly: true,
			})
		}

		c.Set("session_key", key)
		c.Next()
	}
}

// SessionKey returns the session key provisioned by SessionMiddleware.
func SessionKey(c *gin.Context) string {
	return c.GetString("session_key")
}
