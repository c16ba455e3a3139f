package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cableworks/internal/core/id"
	"cableworks/internal/domain"
	"cableworks/internal/domain/documents/payslip"
	"cableworks/internal/infrastructure/http/v1/dto"
)

// PayslipHandler handles HTTP requests for Payslip documents.
type PayslipHandler struct {
	*BaseDocumentHandler[*payslip.Payslip, dto.CreatePayslipRequest, dto.UpdatePayslipRequest]
	service *payslip.Service
}

// NewPayslipHandler creates a new payslip handler.
func NewPayslipHandler(base *BaseHandler, service *payslip.Service) *PayslipHandler {
	cfg := BaseDocumentHandlerConfig[*payslip.Payslip, dto.CreatePayslipRequest, dto.UpdatePayslipRequest]{
		Service:      service,
		MapCreateDTO: func(req dto.CreatePayslipRequest) *payslip.Payslip {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdatePayslipRequest, existing *payslip.Payslip) *payslip.Payslip {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(entity *payslip.Payslip) any {
			return dto.FromPayslip(entity)
		},
	}

	return &PayslipHandler{
		BaseDocumentHandler: NewBaseDocumentHandler(base, cfg),
		service:             service,
	}
}

// List handles GET /document/payslips - list with filtering.
func (h *PayslipHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := payslip.ListFilter{
		ListFilter: domain.DefaultListFilter(),
	}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "date DESC")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	if employeeID := c.Query("employeeId"); employeeID != "" {
		if parsed, err := id.Parse(employeeID); err == nil {
			filter.EmployeeID = &parsed
		}
	}

	if payPeriod := c.Query("payPeriod"); payPeriod != "" {
		filter.PayPeriod = &payPeriod
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

// respondList sends paginated list response.
func (h *PayslipHandler) respondList(c *gin.Context, result domain.ListResult[*payslip.Payslip]) {
	items := make([]*dto.PayslipResponse, 0, len(result.Items))
	for _, doc := range result.Items {
		items = append(items, dto.FromPayslip(doc))
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}
