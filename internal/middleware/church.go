package middleware

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/constants"
	apierrors "github.com/reanestrella/cell-growth-hub-sub000/internal/errors"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/services"
)

// SessionLoader resolves the profile, church and role of a profile ID.
type SessionLoader interface {
	SessionContext(ctx context.Context, profileID uint64) (*models.SessionContext, error)
}

// RequireChurch loads the session context of the authenticated profile.
// Every handler behind it works on exactly one church.
func RequireChurch(loader SessionLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		session, err := loader.SessionContext(c.Request.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProfileNotFound):
				apierrors.Unauthorized(c, "Session is no longer valid")
			case errors.Is(err, services.ErrNoChurchAccess), errors.Is(err, services.ErrChurchInactive):
				apierrors.Forbidden(c, err.Error())
			default:
				slog.Error("failed to load session context", "profile_id", userID, "error", err)
				apierrors.InternalError(c, "")
			}
			return
		}

		if churchID, ok := c.Get(constants.ContextKeyTokenChurchID); ok && churchID != session.ChurchID() {
			apierrors.Unauthorized(c, "Token was issued for another church")
			return
		}

		c.Set(constants.ContextKeySession, session)
		c.Next()
	}
}

// CurrentSession returns the session context set by RequireChurch.
func CurrentSession(c *gin.Context) (*models.SessionContext, bool) {
	v, exists := c.Get(constants.ContextKeySession)
	if !exists {
		return nil, false
	}
	session, ok := v.(*models.SessionContext)
	return session, ok
}

// RequireRole allows the request only when the session role is one of roles.
// An empty list allows every role.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := CurrentSession(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}
		if len(roles) > 0 && !session.HasRole(roles...) {
			apierrors.InsufficientPermissions(c, "")
			return
		}
		c.Next()
	}
}
