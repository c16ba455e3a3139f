package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/id"
	"cableworks/internal/domain"
	"cableworks/internal/domain/documents/purchase_order"
	"cableworks/internal/infrastructure/http/v1/dto"
)

// PurchaseOrderHandler handles HTTP requests for PurchaseOrder documents.
type PurchaseOrderHandler struct {
	*BaseDocumentHandler[*purchase_order.PurchaseOrder, dto.CreatePurchaseOrderRequest, dto.UpdatePurchaseOrderRequest]
	service *purchase_order.Service
}

// NewPurchaseOrderHandler creates a new purchase order handler.
func NewPurchaseOrderHandler(base *BaseHandler, service *purchase_order.Service) *PurchaseOrderHandler {
	cfg := BaseDocumentHandlerConfig[*purchase_order.PurchaseOrder, dto.CreatePurchaseOrderRequest, dto.UpdatePurchaseOrderRequest]{
		Service:      service,
		MapCreateDTO: func(req dto.CreatePurchaseOrderRequest) *purchase_order.PurchaseOrder {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdatePurchaseOrderRequest, existing *purchase_order.PurchaseOrder) *purchase_order.PurchaseOrder {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(entity *purchase_order.PurchaseOrder) any {
			return dto.FromPurchaseOrder(entity)
		},
	}

	return &PurchaseOrderHandler{
		BaseDocumentHandler: NewBaseDocumentHandler(base, cfg),
		service:             service,
	}
}

// List handles GET /document/purchase-orders - list with filtering.
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := purchase_order.ListFilter{
		ListFilter: domain.DefaultListFilter(),
	}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "date DESC")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	if supplierID := c.Query("supplierId"); supplierID != "" {
		if parsed, err := id.Parse(supplierID); err == nil {
			filter.SupplierID = &parsed
		}
	}

	if productID := c.Query("productId"); productID != "" {
		if parsed, err := id.Parse(productID); err == nil {
			filter.ProductID = &parsed
		}
	}

	if status := c.Query("status"); status != "" {
		val := purchase_order.OrderStatus(status)
		filter.Status = &val
	}

	if posted := c.Query("posted"); posted != "" {
		val := posted == "true"
		filter.Posted = &val
	}

	if dateFrom := c.Query("dateFrom"); dateFrom != "" {
		if parsed, err := time.Parse(time.RFC3339, dateFrom); err == nil {
			filter.DateFrom = &parsed
		}
	}

	if dateTo := c.Query("dateTo"); dateTo != "" {
		if parsed, err := time.Parse(time.RFC3339, dateTo); err == nil {
			filter.DateTo = &parsed
		}
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.respondList(c, result)
}

// SetStatus handles POST /document/purchase-orders/:id/status.
func (h *PurchaseOrderHandler) SetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.SetOrderStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.SetStatus(ctx, docID, req.Status)
	if err != nil {
		h.Error(c, err)
		return
	}

	response := dto.FromPurchaseOrder(doc)
	h.CompleteIdempotency(c, http.StatusOK, "application/json", response)
	c.JSON(http.StatusOK, response)
}

// respondList sends paginated list response.
func (h *PurchaseOrderHandler) respondList(c *gin.Context, result domain.ListResult[*purchase_order.PurchaseOrder]) {
	items := make([]*dto.PurchaseOrderResponse, 0, len(result.Items))
	for _, doc := range result.Items {
		items = append(items, dto.FromPurchaseOrder(doc))
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}
