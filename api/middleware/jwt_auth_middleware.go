package middleware

import (
	"net/http"
	"strings"

	"github.com/fanstage/fanstage/api/controller"
	"github.com/fanstage/fanstage/internal/locale"
	"github.com/fanstage/fanstage/internal/tokenutil"
	"github.com/gin-gonic/gin"
)

// JwtAuthMiddleware rejects requests without a valid bearer token. On
// success the user's id is stored under the "x-user-id" context key.
func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		t := strings.Split(authHeader, " ")
		if len(t) == 2 {
			authToken := t[1]
			authorized, _ := tokenutil.IsAuthorized(authToken, secret)
			if authorized {
				userID, err := tokenutil.ExtractIDFromToken(authToken, secret)
				if err == nil {
					c.Set("x-user-id", userID)
					c.Next()
					return
				}
			}
		}
		tag := locale.FromAcceptLanguage(c.GetHeader("Accept-Language"))
		controller.ErrorResponse(c, http.StatusUnauthorized, locale.CodeUnauthorized, locale.Message(tag, locale.CodeUnauthorized))
		c.Abort()
	}
}

// OptionalJwtAuthMiddleware sets the user id when a valid token is present
// and lets the request through either way. Public endpoints use it to
// personalize responses for logged-in viewers.
func OptionalJwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		t := strings.Split(authHeader, " ")
		if len(t) == 2 {
			authToken := t[1]
			if authorized, _ := tokenutil.IsAuthorized(authToken, secret); authorized {
				if userID, err := tokenutil.ExtractIDFromToken(authToken, secret); err == nil {
					c.Set("x-user-id", userID)
				}
			}
		}
		c.Next()
	}
}
