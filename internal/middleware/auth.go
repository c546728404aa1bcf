package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/promostack/storefront-core/internal/models"
	"github.com/promostack/storefront-core/internal/modules/settings"
	"github.com/promostack/storefront-core/internal/pkg/jwt"
	"github.com/promostack/storefront-core/internal/pkg/response"
	sessionpkg "github.com/promostack/storefront-core/internal/pkg/session"
	"gorm.io/gorm"
)

const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeySID       = "session_id"

	LoginPath = "/auth/login"
	HomePath  = "/"
)

// Auth returns a middleware that enforces JWT authentication. Browser
// navigations are redirected to the login page; API clients get 401.
func Auth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := ValidateTokenClaims(db, extractToken(c))
		if err != nil {
			if prefersHTML(c) {
				c.Redirect(http.StatusFound, LoginPath)
				c.Abort()
				return
			}
			response.Unauthorized(c)
			return
		}
		setIdentity(c, db, claims)
		c.Next()
	}
}

func prefersHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

// OptionalAuth sets the user identity if a valid token is present, but does
// not block the request.
func OptionalAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := ValidateTokenClaims(db, extractToken(c)); err == nil && claims.UserID != "" {
			setIdentity(c, db, claims)
		}
		c.Next()
	}
}

// AdminGate guards admin routes. Requests without a session are redirected to
// the login page; sessions whose email is not on the allow-list are redirected
// home. Authorization failures never carry an error body.
func AdminGate(db *gorm.DB, settingsSvc *settings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := ValidateTokenClaims(db, extractToken(c))
		if err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		setIdentity(c, db, claims)

		allowed, err := settingsSvc.IsAdminEmail(CurrentUserEmail(c))
		if err != nil || !allowed {
			c.Redirect(http.StatusFound, HomePath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// ValidateTokenClaims validates a JWT and its backing session, returning claims.
func ValidateTokenClaims(db *gorm.DB, rawToken string) (*jwt.Claims, error) {
	token := NormalizeToken(rawToken)
	if token == "" {
		return nil, errors.New("token is required")
	}

	claims, err := jwt.Parse(token)
	if err != nil {
		return nil, err
	}
	active, err := sessionpkg.IsActive(db, claims.UserID, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, errors.New("session expired or revoked")
	}
	return claims, nil
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}

// CurrentUserEmail extracts the authenticated user's email from context.
func CurrentUserEmail(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserEmail)
	email, _ := v.(string)
	return email
}

// CurrentSessionID extracts the backing session ID from context.
func CurrentSessionID(c *gin.Context) string {
	v, _ := c.Get(ContextKeySID)
	sid, _ := v.(string)
	return sid
}

// CurrentToken returns the normalized token presented on this request.
func CurrentToken(c *gin.Context) (string, bool) {
	token := extractToken(c)
	return token, token != ""
}

// IsAuthenticated returns true if the request has a valid auth token.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUserID(c) != ""
}

func setIdentity(c *gin.Context, db *gorm.DB, claims *jwt.Claims) {
	c.Set(ContextKeyUserID, claims.UserID)
	if claims.SessionID != "" {
		c.Set(ContextKeySID, claims.SessionID)
		sessionpkg.Touch(db, claims.UserID, claims.SessionID)
	}

	var u models.UserModel
	if err := db.Select("email").First(&u, "id = ?", claims.UserID).Error; err == nil {
		c.Set(ContextKeyUserEmail, u.Email)
	}
}

func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth != "" {
		return NormalizeToken(auth)
	}
	if cookie, err := c.Cookie("session_token"); err == nil && cookie != "" {
		return NormalizeToken(cookie)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
