package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/id"
	"cableworks/internal/infrastructure/http/v1/dto"
	"cableworks/internal/infrastructure/storage/postgres"
)

// BaseHandler carries the helpers shared by every concrete handler.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON binds the request body into obj. On failure it reports a
// validation error and returns false.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}
	h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
	return false
}

// Error records err on the gin context and aborts. The JSON error body
// itself is written by middleware.ErrorHandler so every handler fails
// through one code path.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ParseIntQuery reads an integer query parameter, falling back to
// defaultVal when absent or malformed.
func (h *BaseHandler) ParseIntQuery(c *gin.Context, key string, defaultVal int) int {
	raw := c.Query(key)
	if raw == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	return defaultVal
}

// CompleteIdempotency records the response for the request's
// idempotency key so a retry replays the same status, content type and
// body. A request without a key is a no-op.
func (h *BaseHandler) CompleteIdempotency(c *gin.Context, statusCode int, contentType string, response any) {
	key, haveKey := c.Get("idempotency_key")
	store, haveStore := c.Get("idempotency_store")
	if !haveKey || !haveStore {
		return
	}
	_ = store.(*postgres.IdempotencyStore).CompleteKey(
		c.Request.Context(), key.(string), statusCode, contentType, response)
}

// PathID parses the :id path parameter. On a malformed value it
// reports a validation error and returns false.
func (h *BaseHandler) PathID(c *gin.Context) (id.ID, bool) {
	parsed, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return id.ID{}, false
	}
	return parsed, true
}

// Respond completes the idempotency record and writes the JSON body in
// one step.
func (h *BaseHandler) Respond(c *gin.Context, statusCode int, payload any) {
	h.CompleteIdempotency(c, statusCode, "application/json", payload)
	c.JSON(statusCode, payload)
}

// Success sends a 200 acknowledgement with a message.
func (h *BaseHandler) Success(c *gin.Context, message string) {
	response := dto.SuccessResponse{Success: true, Message: message}
	h.CompleteIdempotency(c, http.StatusOK, "application/json", response)
	c.JSON(http.StatusOK, response)
}
