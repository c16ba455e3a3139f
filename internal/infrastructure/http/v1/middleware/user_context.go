// Package middleware provides HTTP middleware for the Cableworks API.
package middleware

import (
	"github.com/gin-gonic/gin"

	"cableworks/internal/core/security"
)

// UserContext exposes the authenticated user to the domain layer: the
// user ID via security.GetUserID(ctx) and the request AccessScope via
// security.GetScope(ctx).
//
// Must run AFTER Auth middleware, which sets "user_id" in gin context
// and the user in the request context.
//
// Usage in router:
//
//	protected.Use(middleware.Auth(cfg.JWTValidator))
//	protected.Use(middleware.UserContext())
func UserContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if userID, exists := c.Get("user_id"); exists {
			if uid, ok := userID.(string); ok && uid != "" {
				ctx = security.WithUserID(ctx, uid)
			}
		}

		ctx = security.WithScope(ctx, security.NewAccessScope(ctx))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
