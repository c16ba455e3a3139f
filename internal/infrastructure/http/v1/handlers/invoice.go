package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cableworks/internal/core/apperror"
	"cableworks/internal/core/id"
	"cableworks/internal/domain"
	"cableworks/internal/domain/documents/invoice"
	"cableworks/internal/infrastructure/http/v1/dto"
)

// InvoiceHandler handles HTTP requests for Invoice documents.
type InvoiceHandler struct {
	*BaseDocumentHandler[*invoice.Invoice, dto.CreateInvoiceRequest, dto.UpdateInvoiceRequest]
	service *invoice.Service
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(base *BaseHandler, service *invoice.Service) *InvoiceHandler {
	cfg := BaseDocumentHandlerConfig[*invoice.Invoice, dto.CreateInvoiceRequest, dto.UpdateInvoiceRequest]{
		Service:      service,
		MapCreateDTO: func(req dto.CreateInvoiceRequest) *invoice.Invoice {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateInvoiceRequest, existing *invoice.Invoice) *invoice.Invoice {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(entity *invoice.Invoice) any {
			return dto.FromInvoice(entity)
		},
	}

	return &InvoiceHandler{
		BaseDocumentHandler: NewBaseDocumentHandler(base, cfg),
		service:             service,
	}
}

// List handles GET /document/invoices - list with filtering.
func (h *InvoiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := invoice.ListFilter{
		ListFilter: domain.DefaultListFilter(),
	}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "date DESC")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	if customerID := c.Query("customerId"); customerID != "" {
		if parsed, err := id.Parse(customerID); err == nil {
			filter.CustomerID = &parsed
		}
	}

	if productID := c.Query("productId"); productID != "" {
		if parsed, err := id.Parse(productID); err == nil {
			filter.ProductID = &parsed
		}
	}

	if posted := c.Query("posted"); posted != "" {
		val := posted == "true"
		filter.Posted = &val
	}

	if unsettled := c.Query("unsettled"); unsettled != "" {
		val := unsettled == "true"
		filter.Unsettled = &val
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

// RecordPayment handles POST /document/invoices/:id/payments.
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.RecordPaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.RecordPayment(ctx, docID, req.Amount)
	if err != nil {
		h.Error(c, err)
		return
	}

	response := dto.FromInvoice(doc)
	h.CompleteIdempotency(c, http.StatusOK, "application/json", response)
	c.JSON(http.StatusOK, response)
}

// respondList sends paginated list response.
func (h *InvoiceHandler) respondList(c *gin.Context, result domain.ListResult[*invoice.Invoice]) {
	items := make([]*dto.InvoiceResponse, 0, len(result.Items))
	for _, doc := range result.Items {
		items = append(items, dto.FromInvoice(doc))
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}
