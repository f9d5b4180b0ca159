package mapping

import (
	"github.com/fust64/fust_beheer_app/internal/core/domain"
	"github.com/fust64/fust_beheer_app/internal/models"
)

// ToModelPartner converts a domain Partner to a model Partner
func ToModelPartner(d domain.Partner) models.Partner {
	return models.Partner{
		ID:        d.ID,
		Code:      d.Code,
		Name:      d.Name,
		Kind:      string(d.Kind),
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainPartner converts a model Partner to a domain Partner
func ToDomainPartner(m models.Partner) domain.Partner {
	return domain.Partner{
		ID:        m.ID,
		Code:      m.Code,
		Name:      m.Name,
		Kind:      domain.PartnerKind(m.Kind),
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainPartnerSlice converts a slice of model Partners to a slice of domain Partners
func ToDomainPartnerSlice(ms []models.Partner) []domain.Partner {
	ds := make([]domain.Partner, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPartner(m)
	}
	return ds
}
