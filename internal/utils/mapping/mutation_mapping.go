package mapping

import (
	"github.com/fust64/fust_beheer_app/internal/core/domain"
	"github.com/fust64/fust_beheer_app/internal/models"
)

// ToModelMutation converts a domain Mutation to a model Mutation
func ToModelMutation(d domain.Mutation) models.Mutation {
	return models.Mutation{
		ID:            d.ID,
		PartnerID:     d.PartnerID,
		EventDate:     d.EventDate,
		LoadedCage:    d.LoadedCage,
		LoadedPlate:   d.LoadedPlate,
		UnloadedCage:  d.UnloadedCage,
		UnloadedPlate: d.UnloadedPlate,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainMutation converts a model Mutation to a domain Mutation
func ToDomainMutation(m models.Mutation) domain.Mutation {
	return domain.Mutation{
		ID:            m.ID,
		PartnerID:     m.PartnerID,
		EventDate:     m.EventDate,
		LoadedCage:    m.LoadedCage,
		LoadedPlate:   m.LoadedPlate,
		UnloadedCage:  m.UnloadedCage,
		UnloadedPlate: m.UnloadedPlate,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainMutationSlice converts a slice of model Mutations to a slice of domain Mutations
func ToDomainMutationSlice(ms []models.Mutation) []domain.Mutation {
	ds := make([]domain.Mutation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMutation(m)
	}
	return ds
}

// ToDomainMutationDetail converts a joined model row to a domain MutationDetail
func ToDomainMutationDetail(m models.MutationWithPartner) domain.MutationDetail {
	return domain.MutationDetail{
		Mutation:    ToDomainMutation(m.Mutation),
		PartnerCode: m.PartnerCode,
		PartnerName: m.PartnerName,
		PartnerKind: domain.PartnerKind(m.PartnerKind),
	}
}

// ToDomainMutationDetailSlice converts a slice of joined model rows
func ToDomainMutationDetailSlice(ms []models.MutationWithPartner) []domain.MutationDetail {
	ds := make([]domain.MutationDetail, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMutationDetail(m)
	}
	return ds
}
