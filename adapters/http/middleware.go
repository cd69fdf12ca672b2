package http

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/internal/domain/profile"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/auth"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

const (
	GinContextKeyOwnerID   = "ownerID"
	GinContextKeyTokenID   = "tokenID"
	GinContextKeyExpiresAt = "tokenExpiresAt"
	GinContextKeyProfile   = "profile"
)

const msgUnauthorized = "Unauthorized"

func abortWith(c *gin.Context, err *apperror.AppError) {
	_ = c.Error(err)
	c.Abort()
}

// AuthMiddleware resolves the session from the bearer token. Revoked tokens are rejected.
func AuthMiddleware(jwtSvc *auth.JWTService, revoker service.TokenRevoker, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWith(c, apperror.NewUnauthorized(msgUnauthorized, nil))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			abortWith(c, apperror.NewUnauthorized("Invalid token format", nil))
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			abortWith(c, apperror.NewUnauthorized("Invalid or expired token", err))
			return
		}

		revoked, err := revoker.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			log.Error("Failed to check token revocation", err, zap.String("owner_id", claims.OwnerID.String()))
			abortWith(c, apperror.NewStore(err))
			return
		}
		if revoked {
			abortWith(c, apperror.NewUnauthorized("Invalid or expired token", nil))
			return
		}

		c.Set(GinContextKeyOwnerID, claims.OwnerID)
		c.Set(GinContextKeyTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(GinContextKeyExpiresAt, claims.ExpiresAt.Time)
		}
		c.Next()
	}
}

// RequireVerified admits only owners whose profile an admin has approved.
func RequireVerified(profiles profile.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := GetOwnerIDFromGinContext(c)
		if !ok {
			abortWith(c, apperror.NewUnauthorized(msgUnauthorized, nil))
			return
		}
		p, err := profiles.FindByID(c.Request.Context(), ownerID)
		if err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				abortWith(c, apperror.NewPermissionDenied("Account verification pending. Please contact admin."))
				return
			}
			_ = c.Error(err)
			c.Abort()
			return
		}
		if !p.Verified {
			abortWith(c, apperror.NewPermissionDenied("Your account is pending admin verification. Please try again later."))
			return
		}
		c.Set(GinContextKeyProfile, p)
		c.Next()
	}
}

// RequireAdmin must run after RequireVerified.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetProfileFromGinContext(c)
		if !ok || !p.IsAdmin {
			abortWith(c, apperror.NewPermissionDenied("Admin access required"))
			return
		}
		c.Next()
	}
}

// ErrorMiddleware renders the last handler error as {"success": false, "error": ...}.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal(apperror.ErrInternal.Error(), err)
		}
		status := apperror.ToHTTPStatus(appErr)
		if status >= 500 {
			log.Error("Request failed", err, zap.String("path", c.FullPath()), zap.Int("status", status))
		} else {
			log.Debug("Request rejected", zap.String("path", c.FullPath()), zap.Int("status", status), zap.Error(err))
		}

		if c.Writer.Written() {
			return
		}
		c.JSON(status, appErr.ToJSON())
	}
}

func GetOwnerIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	ownerID, ok := ctx.Value(GinContextKeyOwnerID).(uuid.UUID)
	return ownerID, ok
}

func GetOwnerIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	ownerID, ok := c.Get(GinContextKeyOwnerID)
	if !ok {
		return uuid.Nil, false
	}
	ownerIDUUID, ok := ownerID.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return ownerIDUUID, true
}

func GetProfileFromGinContext(c *gin.Context) (*profile.Profile, bool) {
	v, ok := c.Get(GinContextKeyProfile)
	if !ok {
		return nil, false
	}
	p, ok := v.(*profile.Profile)
	return p, ok
}

func getSessionFromGinContext(c *gin.Context) (string, time.Time) {
	return c.GetString(GinContextKeyTokenID), c.GetTime(GinContextKeyExpiresAt)
}
