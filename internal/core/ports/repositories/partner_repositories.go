package repositories

import (
	"context"

	"github.com/fust64/fust_beheer_app/internal/core/domain"
)

// PartnerReader defines read operations for partner data
type PartnerReader interface {
	// FindPartnerByID retrieves a partner by its surrogate key.
	FindPartnerByID(ctx context.Context, partnerID int64) (*domain.Partner, error)

	// FindPartnerByCode retrieves a partner by its unique code (exact,
	// case-sensitive match).
	FindPartnerByCode(ctx context.Context, code string) (*domain.Partner, error)

	// ListPartners retrieves all partners ordered by kind then name. The
	// returned slice is always complete; there is no pagination.
	ListPartners(ctx context.Context) ([]domain.Partner, error)
}

// PartnerWriter defines write operations for partner data
type PartnerWriter interface {
	// SavePartner inserts a new partner and returns it with the store-assigned
	// id and creation timestamp. A code collision yields apperrors.ErrDuplicate.
	SavePartner(ctx context.Context, partner domain.Partner) (*domain.Partner, error)
}

// PartnerRepositoryFacade combines all partner-related repository interfaces
type PartnerRepositoryFacade interface {
	PartnerReader
	PartnerWriter
}
