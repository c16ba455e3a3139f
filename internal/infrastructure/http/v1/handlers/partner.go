package handlers

import (
	"cableworks/internal/domain/catalogs/partner"
	"cableworks/internal/infrastructure/http/v1/dto"
)

// Type alias keeps handler signatures readable.
type PartnerHTTPHandler = CatalogHandler[
	*partner.Partner,
	dto.CreatePartnerRequest,
	dto.UpdatePartnerRequest,
]

// NewPartnerHandler wires the generic catalog handler for partners.
// The DTO mapping lives here, next to the entity and its DTOs.
func NewPartnerHandler(
	base *BaseHandler,
	service *partner.Service,
) *PartnerHTTPHandler {
	config := CatalogHandlerConfig[
		*partner.Partner,
		dto.CreatePartnerRequest,
		dto.UpdatePartnerRequest,
	]{
		Service: service.CatalogService,

		MapCreateDTO: func(req dto.CreatePartnerRequest) *partner.Partner {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdatePartnerRequest, existing *partner.Partner) *partner.Partner {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *partner.Partner) any {
			return dto.FromPartner(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
