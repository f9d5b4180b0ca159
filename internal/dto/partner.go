package dto

import (
	"time"

	"github.com/fust64/fust_beheer_app/internal/core/domain"
)

// CreatePartnerRequest defines the data needed to create a new partner.
type CreatePartnerRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name"`
	Kind string `json:"kind" binding:"required,oneof=customer supplier"`
}

// PartnerResponse defines the data returned for a partner.
type PartnerResponse struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToPartnerResponse converts a domain.Partner to PartnerResponse DTO
func ToPartnerResponse(p *domain.Partner) PartnerResponse {
	return PartnerResponse{
		ID:        p.ID,
		Code:      p.Code,
		Name:      p.Name,
		Kind:      string(p.Kind),
		CreatedAt: p.CreatedAt,
	}
}

// ToListPartnerResponse converts a slice of domain.Partner to response DTOs
func ToListPartnerResponse(partners []domain.Partner) []PartnerResponse {
	res := make([]PartnerResponse, len(partners))
	for i, p := range partners {
		res[i] = ToPartnerResponse(&p)
	}
	return res
}
