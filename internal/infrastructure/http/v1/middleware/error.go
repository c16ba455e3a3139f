package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cableworks/internal/core/apperror"
	"cableworks/internal/infrastructure/storage/postgres"
	"cableworks/pkg/logger"
)

// failIdempotency stores the error response under the request's
// idempotency key so a retry replays the same failure. Best effort.
func failIdempotency(c *gin.Context, status int, body gin.H) {
	key, haveKey := c.Get("idempotency_key")
	store, haveStore := c.Get("idempotency_store")
	if !haveKey || !haveStore {
		return
	}
	if s, ok := store.(*postgres.IdempotencyStore); ok && s != nil {
		_ = s.FailKey(c.Request.Context(), key.(string), status, "application/json", body)
	}
}

// ErrorHandler turns errors recorded on the gin context into one JSON
// error shape. Internal causes are logged, never sent to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		// A handler that already wrote a body keeps it
		if c.Writer.Written() {
			return
		}

		appErr, ok := apperror.AsAppError(err)
		if !ok {
			logger.Error(c.Request.Context(), "unhandled error", "error", err)

			body := gin.H{
				"code":    apperror.CodeInternal,
				"message": "Internal server error",
				"details": map[string]any{
					"request_id": c.GetString("request_id"),
				},
			}
			failIdempotency(c, http.StatusInternalServerError, body)
			c.JSON(http.StatusInternalServerError, body)
			return
		}

		if appErr.Err != nil {
			logger.Error(c.Request.Context(), "request error",
				"code", appErr.Code,
				"cause", appErr.Err,
			)
		}

		body := gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
			"details": appErr.Details,
		}
		failIdempotency(c, appErr.HTTPStatus, body)
		c.JSON(appErr.HTTPStatus, body)
	}
}
