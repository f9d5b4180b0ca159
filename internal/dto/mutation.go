package dto

import (
	"time"

	"github.com/fust64/fust_beheer_app/internal/core/domain"
)

// CreateMutationRequest defines the data needed to record a new exchange
// event. The partner is referenced by code and created on first use; Kind is
// only a hint for that creation and is ignored for existing partners.
type CreateMutationRequest struct {
	PartnerCode   string `json:"partnerCode" binding:"required"`
	Kind          string `json:"kind" binding:"omitempty,oneof=customer supplier"`
	EventDate     string `json:"eventDate" binding:"required"`
	LoadedCage    int    `json:"loadedCage" binding:"min=0"`
	LoadedPlate   int    `json:"loadedPlate" binding:"min=0"`
	UnloadedCage  int    `json:"unloadedCage" binding:"min=0"`
	UnloadedPlate int    `json:"unloadedPlate" binding:"min=0"`
}

// MutationResponse defines the data returned for a single mutation.
type MutationResponse struct {
	ID            int64     `json:"id"`
	PartnerID     int64     `json:"partnerID"`
	EventDate     string    `json:"eventDate"`
	LoadedCage    int       `json:"loadedCage"`
	LoadedPlate   int       `json:"loadedPlate"`
	UnloadedCage  int       `json:"unloadedCage"`
	UnloadedPlate int       `json:"unloadedPlate"`
	LoadedTotal   int       `json:"loadedTotal"`
	UnloadedTotal int       `json:"unloadedTotal"`
	CreatedAt     time.Time `json:"createdAt"`
}

// MutationDetailResponse is a mutation with partner identity, for the global list.
type MutationDetailResponse struct {
	MutationResponse
	PartnerCode string `json:"partnerCode"`
	PartnerName string `json:"partnerName"`
	PartnerKind string `json:"partnerKind"`
}

// LedgerEntryResponse is a mutation annotated with per-event deltas and the
// running balance after applying it.
type LedgerEntryResponse struct {
	MutationResponse
	DeltaCage    int `json:"deltaCage"`
	DeltaPlate   int `json:"deltaPlate"`
	RunningCage  int `json:"runningCage"`
	RunningPlate int `json:"runningPlate"`
}

// PartnerLedgerResponse is the full detail ledger for one partner.
type PartnerLedgerResponse struct {
	Partner      PartnerResponse       `json:"partner"`
	Entries      []LedgerEntryResponse `json:"entries"`
	CageBalance  int                   `json:"cageBalance"`
	PlateBalance int                   `json:"plateBalance"`
	CageMeaning  string                `json:"cageMeaning"`
	PlateMeaning string                `json:"plateMeaning"`
}

// ToMutationResponse converts a domain.Mutation to MutationResponse DTO
func ToMutationResponse(m domain.Mutation) MutationResponse {
	return MutationResponse{
		ID:            m.ID,
		PartnerID:     m.PartnerID,
		EventDate:     m.EventDate.Format(domain.EventDateFormat),
		LoadedCage:    m.LoadedCage,
		LoadedPlate:   m.LoadedPlate,
		UnloadedCage:  m.UnloadedCage,
		UnloadedPlate: m.UnloadedPlate,
		LoadedTotal:   m.LoadedTotal(),
		UnloadedTotal: m.UnloadedTotal(),
		CreatedAt:     m.CreatedAt,
	}
}

// ToMutationDetailResponse converts a domain.MutationDetail to its DTO
func ToMutationDetailResponse(m domain.MutationDetail) MutationDetailResponse {
	return MutationDetailResponse{
		MutationResponse: ToMutationResponse(m.Mutation),
		PartnerCode:      m.PartnerCode,
		PartnerName:      m.PartnerName,
		PartnerKind:      string(m.PartnerKind),
	}
}

// ToListMutationDetailResponse converts a slice of domain.MutationDetail
func ToListMutationDetailResponse(ms []domain.MutationDetail) []MutationDetailResponse {
	res := make([]MutationDetailResponse, len(ms))
	for i, m := range ms {
		res[i] = ToMutationDetailResponse(m)
	}
	return res
}

// ToPartnerLedgerResponse converts a domain.PartnerLedger, attaching the
// kind-dependent interpretation labels for the lifetime balances.
func ToPartnerLedgerResponse(l *domain.PartnerLedger) PartnerLedgerResponse {
	entries := make([]LedgerEntryResponse, len(l.Entries))
	for i, e := range l.Entries {
		entries[i] = LedgerEntryResponse{
			MutationResponse: ToMutationResponse(e.Mutation),
			DeltaCage:        e.DeltaCage,
			DeltaPlate:       e.DeltaPlate,
			RunningCage:      e.RunningCage,
			RunningPlate:     e.RunningPlate,
		}
	}
	return PartnerLedgerResponse{
		Partner:      ToPartnerResponse(&l.Partner),
		Entries:      entries,
		CageBalance:  l.Totals.CageBalance(),
		PlateBalance: l.Totals.PlateBalance(),
		CageMeaning:  string(domain.MeaningFor(l.Partner.Kind, l.Totals.CageBalance())),
		PlateMeaning: string(domain.MeaningFor(l.Partner.Kind, l.Totals.PlateBalance())),
	}
}
