package auth

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"yatube/backend/internal/models"
	"yatube/backend/pkg/jwt"
)

const (
	// TokenCookie carries the JWT for browser clients.
	TokenCookie = "token"

	userIDKey = "userID"
	userKey   = "user"
)

// UserLookup loads the account a token was issued for.
type UserLookup interface {
	UserByID(ctx context.Context, id uint) (*models.User, error)
}

// Authenticate inspects the Authorization header (Bearer) or the token cookie and,
// when the token is valid and its user still exists, attaches the user to the request.
// It never rejects a request: anonymous visitors just carry no user.
func Authenticate(secret string, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			tokenString, _ = c.Cookie(TokenCookie)
		}
		if tokenString != "" {
			if id, err := jwt.ParseToken(tokenString, secret); err == nil {
				if user, err := users.UserByID(c.Request.Context(), id); err == nil {
					c.Set(userIDKey, user.ID)
					c.Set(userKey, user)
				}
			}
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// CurrentUser returns the authenticated user, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok && u != nil
}

// UserID returns the authenticated user's ID, if any.
func UserID(c *gin.Context) (uint, bool) {
	id, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	uid, ok := id.(uint)
	return uid, ok
}

// RequireLogin sends anonymous visitors to loginURL, remembering where they were going.
func RequireLogin(loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); ok {
			c.Next()
			return
		}
		c.Redirect(http.StatusFound, LoginRedirect(loginURL, c.Request.URL.RequestURI()))
		c.Abort()
	}
}

// LoginRedirect builds loginURL?next=<next>. Slashes in next are left readable.
func LoginRedirect(loginURL, next string) string {
	return loginURL + "?next=" + strings.ReplaceAll(url.QueryEscape(next), "%2F", "/")
}
