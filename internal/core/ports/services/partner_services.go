package services

import (
	"context"

	"github.com/fust64/fust_beheer_app/internal/core/domain"
	"github.com/fust64/fust_beheer_app/internal/dto"
)

// PartnerReaderSvc defines read operations for partner data
type PartnerReaderSvc interface {
	// GetPartnerByID retrieves a specific partner by its id.
	GetPartnerByID(ctx context.Context, partnerID int64) (*domain.Partner, error)

	// ListPartners retrieves all known partners.
	ListPartners(ctx context.Context) ([]domain.Partner, error)
}

// PartnerWriterSvc defines write operations for partner data
type PartnerWriterSvc interface {
	// CreatePartner persists a new partner.
	CreatePartner(ctx context.Context, req dto.CreatePartnerRequest) (*domain.Partner, error)

	// ResolvePartner returns the partner with the given code, creating it
	// with the given kind and an empty name if absent. When the code already
	// exists its stored kind wins and the hint is ignored.
	ResolvePartner(ctx context.Context, code string, kind domain.PartnerKind) (*domain.Partner, error)
}

// PartnerSvcFacade combines all partner-related service interfaces
type PartnerSvcFacade interface {
	PartnerReaderSvc
	PartnerWriterSvc
}
