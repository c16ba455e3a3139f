package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"cableworks/internal/core/apperror"
	appctx "cableworks/internal/core/context"
	"cableworks/internal/infrastructure/storage/postgres"
)

const HeaderIdempotencyKey = "X-Idempotency-Key"

// maxIdempotencyBodyBytes bounds the body we hash and buffer
const maxIdempotencyBodyBytes = 1 << 20

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// hashBody reads and restores the request body, returning its SHA-256.
// Oversized bodies are rejected so the store never keeps huge payloads.
func hashBody(c *gin.Context) (string, bool) {
	limited := io.LimitReader(c.Request.Body, maxIdempotencyBodyBytes+1)
	body, _ := io.ReadAll(limited)
	if len(body) > maxIdempotencyBodyBytes {
		appErr := apperror.NewValidation("request body too large for idempotency")
		appErr.HTTPStatus = http.StatusRequestEntityTooLarge
		_ = c.Error(appErr.WithDetail("max_bytes", maxIdempotencyBodyBytes))
		c.Abort()
		return "", false
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:]), true
}

// Idempotency makes mutating requests carrying X-Idempotency-Key safe
// to retry. A repeated key replays the stored response; a repeated key
// with a different body is a conflict raised by the store.
func Idempotency(store *postgres.IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" || !isMutating(c.Request.Method) {
			c.Next()
			return
		}

		userID := ""
		if user := appctx.GetUser(c.Request.Context()); user != nil {
			userID = user.UserID
		}

		requestHash, ok := hashBody(c)
		if !ok {
			return
		}

		operation := c.Request.Method + " " + c.FullPath()

		replay, err := store.AcquireKey(c.Request.Context(), key, userID, operation, requestHash)
		if err != nil {
			if _, ok := apperror.AsAppError(err); !ok {
				err = apperror.NewInternal(err).WithDetail("component", "idempotency")
			}
			_ = c.Error(err)
			c.Abort()
			return
		}

		if replay != nil {
			c.Data(replay.StatusCode, replay.ContentType, replay.Body)
			c.Abort()
			return
		}

		// Handlers complete or fail the key through these
		c.Set("idempotency_key", key)
		c.Set("idempotency_store", store)

		c.Next()
	}
}
