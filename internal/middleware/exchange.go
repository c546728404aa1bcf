package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	pkgredis "github.com/promostack/storefront-core/internal/pkg/redis"
)

const (
	// ExchangeCodeKeyPrefix maps a one-time login code to a session token.
	ExchangeCodeKeyPrefix = "auth:code:"
	sessionCookieName     = "session_token"
	sessionCookieMaxAge   = 30 * 24 * 60 * 60
)

// CodeExchange intercepts an OAuth-style `code` query parameter on any route,
// completes the session exchange and redirects to the admin console. Requests
// without a code pass through untouched.
func CodeExchange(rc *pkgredis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := strings.TrimSpace(c.Query("code"))
		if code == "" {
			c.Next()
			return
		}

		token, err := rc.GetDel(c.Request.Context(), ExchangeCodeKeyPrefix+code)
		if err != nil || token == "" {
			// Unknown or already-used codes fall through to normal handling.
			c.Next()
			return
		}

		c.SetCookie(sessionCookieName, token, sessionCookieMaxAge, "/", "", false, true)
		c.Redirect(http.StatusFound, "/admin")
		c.Abort()
	}
}
