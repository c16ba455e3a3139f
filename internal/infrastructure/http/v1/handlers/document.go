package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"cableworks/internal/core/id"
)

// DocumentService is the service surface the generic document routes
// need. Every document service satisfies it.
type DocumentService[T any] interface {
	GetByID(ctx context.Context, id id.ID) (T, error)
	Create(ctx context.Context, entity T) error
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, id id.ID) error
	Post(ctx context.Context, id id.ID) error
	Unpost(ctx context.Context, id id.ID) error
	Recalculate(ctx context.Context, id id.ID) (T, error)
}

// BaseDocumentHandler serves the generic document routes. List stays
// with the concrete handlers because each document has its own filter.
type BaseDocumentHandler[T any, CreateDTO any, UpdateDTO any] struct {
	*BaseHandler
	service DocumentService[T]

	mapCreateDTO func(dto CreateDTO) T
	mapUpdateDTO func(dto UpdateDTO, existing T) T
	mapToDTO     func(entity T) any
}

// BaseDocumentHandlerConfig configures the document handler.
type BaseDocumentHandlerConfig[T any, CreateDTO any, UpdateDTO any] struct {
	Service      DocumentService[T]
	MapCreateDTO func(dto CreateDTO) T
	MapUpdateDTO func(dto UpdateDTO, existing T) T
	MapToDTO     func(entity T) any
}

// NewBaseDocumentHandler creates a new base document handler.
func NewBaseDocumentHandler[T any, CreateDTO any, UpdateDTO any](
	base *BaseHandler,
	cfg BaseDocumentHandlerConfig[T, CreateDTO, UpdateDTO],
) *BaseDocumentHandler[T, CreateDTO, UpdateDTO] {
	return &BaseDocumentHandler[T, CreateDTO, UpdateDTO]{
		BaseHandler:  base,
		service:      cfg.Service,
		mapCreateDTO: cfg.MapCreateDTO,
		mapUpdateDTO: cfg.MapUpdateDTO,
		mapToDTO:     cfg.MapToDTO,
	}
}

// respondWithDocument reloads the document and returns its DTO. Post
// and Unpost mutate server-side state, so the response always reflects
// what was stored.
func (h *BaseDocumentHandler[T, CreateDTO, UpdateDTO]) respondWithDocument(c *gin.Context, docID id.ID) {
	doc, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Respond(c, http.StatusOK, h.mapToDTO(doc))
}

// Get handles GET /{entity}/:id.
func (h *BaseDocumentHandler[T, CreateDTO, UpdateDTO]) Get(c *gin.Context) {
	docID, ok := h.PathID(c)
	if !ok {
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, h.mapToDTO(doc))
}

// Create handles POST /{entity}.
func (h *BaseDocumentHandler[T, CreateDTO, UpdateDTO]) Create(c *gin.Context) {
	var req CreateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	doc := h.mapCreateDTO(req)
	if err := h.service.Create(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}

	h.Respond(c, http.StatusCreated, h.mapToDTO(doc))
}

// Update handles PUT /{entity}/:id.
func (h *BaseDocumentHandler[T, CreateDTO, UpdateDTO]) Update(c *gin.Context) {
	docID, ok := h.PathID(c)
	if !ok {
		return
	}

	var req UpdateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	doc = h.mapUpdateDTO(req, doc)
	if err := h.service.Update(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}

	h.Respond(c, http.StatusOK, h.mapToDTO(doc))
}

// Delete handles DELETE /{entity}/:id.
func (h *BaseDocumentHandler[T, CreateDTO, UpdateDTO]) Delete(c *gin.Context) {
	docID, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Post handles POST /{entity}/:id/post.
func (h *BaseDocumentHandler[T, CreateDTO, UpdateDTO]) Post(c *gin.Context) {
	docID, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.service.Post(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}

	h.respondWithDocument(c, docID)
}

// Unpost handles POST /{entity}/:id/unpost.
func (h *BaseDocumentHandler[T, CreateDTO, UpdateDTO]) Unpost(c *gin.Context) {
	docID, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.service.Unpost(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}

	h.respondWithDocument(c, docID)
}

// Recalculate handles POST /{entity}/:id/recalculate. Derived fields
// are recomputed from the stored base fields and saved.
func (h *BaseDocumentHandler[T, CreateDTO, UpdateDTO]) Recalculate(c *gin.Context) {
	docID, ok := h.PathID(c)
	if !ok {
		return
	}

	doc, err := h.service.Recalculate(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Respond(c, http.StatusOK, h.mapToDTO(doc))
}
