// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"github.com/gin-gonic/gin"

	"cableworks/internal/core/apperror"
	appctx "cableworks/internal/core/context"
)

// RequirePermission gates a route on a single permission code.
// Permissions come from the JWT claims stored by Auth; admins pass
// every check.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := appctx.GetUser(c.Request.Context())
		if user == nil {
			_ = c.Error(apperror.NewUnauthorized("authentication required"))
			c.Abort()
			return
		}

		if user.IsAdmin || hasPermission(c, permission) {
			c.Next()
			return
		}

		_ = c.Error(
			apperror.NewForbidden("insufficient permissions").
				WithDetail("required_permission", permission),
		)
		c.Abort()
	}
}

func hasPermission(c *gin.Context, permission string) bool {
	perms, exists := c.Get("permissions")
	if !exists {
		return false
	}
	codes, ok := perms.([]string)
	if !ok {
		return false
	}
	for _, code := range codes {
		if code == permission {
			return true
		}
	}
	return false
}
