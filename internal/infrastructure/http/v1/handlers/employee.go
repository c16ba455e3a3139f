package handlers

import (
	"cableworks/internal/domain/catalogs/employee"
	"cableworks/internal/infrastructure/http/v1/dto"
)

// Type alias keeps handler signatures readable.
type EmployeeHTTPHandler = CatalogHandler[
	*employee.Employee,
	dto.CreateEmployeeRequest,
	dto.UpdateEmployeeRequest,
]

// NewEmployeeHandler wires the generic catalog handler for employees.
func NewEmployeeHandler(
	base *BaseHandler,
	service *employee.Service,
) *EmployeeHTTPHandler {
	config := CatalogHandlerConfig[
		*employee.Employee,
		dto.CreateEmployeeRequest,
		dto.UpdateEmployeeRequest,
	]{
		Service: service.CatalogService,

		MapCreateDTO: func(req dto.CreateEmployeeRequest) *employee.Employee {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateEmployeeRequest, existing *employee.Employee) *employee.Employee {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *employee.Employee) any {
			return dto.FromEmployee(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
