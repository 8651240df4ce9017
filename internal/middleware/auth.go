package middleware

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/auth"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/constants"
	apierrors "github.com/reanestrella/cell-growth-hub-sub000/internal/errors"
)

// RequireAuth checks if the request is authenticated via the cookie session
// or, for API clients, a bearer token.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if userID := session.Get(constants.ContextKeyUserID); userID != nil {
			// Store user ID in context for easy access in handlers
			c.Set(constants.ContextKeyUserID, userID)
			c.Next()
			return
		}

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok || tokens == nil {
			apierrors.Unauthorized(c, "")
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			apierrors.Unauthorized(c, err.Error())
			return
		}

		c.Set(constants.ContextKeyUserID, claims.ProfileID)
		c.Set(constants.ContextKeyTokenChurchID, claims.ChurchID)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// GetUserID retrieves the current profile ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
