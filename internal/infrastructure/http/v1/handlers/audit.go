package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/id"
	"cableworks/internal/infrastructure/storage/postgres"
)

// AuditHandler serves the change history recorded for documents.
type AuditHandler struct {
	*BaseHandler
	audit *postgres.AuditService
}

// NewAuditHandler creates an audit history handler.
func NewAuditHandler(base *BaseHandler, audit *postgres.AuditService) *AuditHandler {
	return &AuditHandler{
		BaseHandler: base,
		audit:       audit,
	}
}

// History returns a handler for GET /{entity}/:id/history.
func (h *AuditHandler) History(entityType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		entityID, err := id.Parse(c.Param("id"))
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid id format"))
			return
		}

		limit := h.ParseIntQuery(c, "limit", 50)
		if limit <= 0 || limit > 500 {
			limit = 50
		}

		entries, err := h.audit.GetEntityHistory(c.Request.Context(), entityType, entityID, limit)
		if err != nil {
			h.Error(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": entries})
	}
}
