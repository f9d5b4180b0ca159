package dto

import (
	"github.com/fust64/fust_beheer_app/internal/core/domain"
)

// Balance sign filter values accepted by the overview endpoints.
const (
	BalanceFilterPositive = "positive"
	BalanceFilterNegative = "negative"
	BalanceFilterNone     = "none"
)

// OverviewFilter narrows the overview by partner kind and/or balance sign.
// The balance filter matches a row when either container type's balance has
// the requested sign.
type OverviewFilter struct {
	Kind    string `form:"kind" binding:"omitempty,oneof=customer supplier"`
	Balance string `form:"balance" binding:"omitempty,oneof=positive negative none"`
}

// Matches reports whether the given overview row passes the filter.
func (f OverviewFilter) Matches(row domain.OverviewRow) bool {
	if f.Kind != "" && string(row.Kind) != f.Kind {
		return false
	}
	switch f.Balance {
	case BalanceFilterPositive:
		return row.CageBalance > 0 || row.PlateBalance > 0
	case BalanceFilterNegative:
		return row.CageBalance < 0 || row.PlateBalance < 0
	case BalanceFilterNone:
		return row.CageBalance == 0 && row.PlateBalance == 0
	}
	return true
}

// FilterOverviewRows returns the rows matching the filter, preserving order.
func FilterOverviewRows(rows []domain.OverviewRow, f OverviewFilter) []domain.OverviewRow {
	filtered := make([]domain.OverviewRow, 0, len(rows))
	for _, row := range rows {
		if f.Matches(row) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// OverviewRowResponse is one partner's lifetime totals with interpretation labels.
type OverviewRowResponse struct {
	PartnerID          int64  `json:"partnerID"`
	Code               string `json:"code"`
	Name               string `json:"name"`
	Kind               string `json:"kind"`
	LoadedCageTotal    int    `json:"loadedCageTotal"`
	UnloadedCageTotal  int    `json:"unloadedCageTotal"`
	CageBalance        int    `json:"cageBalance"`
	CageMeaning        string `json:"cageMeaning"`
	LoadedPlateTotal   int    `json:"loadedPlateTotal"`
	UnloadedPlateTotal int    `json:"unloadedPlateTotal"`
	PlateBalance       int    `json:"plateBalance"`
	PlateMeaning       string `json:"plateMeaning"`
}

// ToOverviewRowResponse converts a domain.OverviewRow to its DTO
func ToOverviewRowResponse(row domain.OverviewRow) OverviewRowResponse {
	return OverviewRowResponse{
		PartnerID:          row.PartnerID,
		Code:               row.Code,
		Name:               row.Name,
		Kind:               string(row.Kind),
		LoadedCageTotal:    row.LoadedCageTotal,
		UnloadedCageTotal:  row.UnloadedCageTotal,
		CageBalance:        row.CageBalance,
		CageMeaning:        string(domain.MeaningFor(row.Kind, row.CageBalance)),
		LoadedPlateTotal:   row.LoadedPlateTotal,
		UnloadedPlateTotal: row.UnloadedPlateTotal,
		PlateBalance:       row.PlateBalance,
		PlateMeaning:       string(domain.MeaningFor(row.Kind, row.PlateBalance)),
	}
}

// ToListOverviewRowResponse converts a slice of domain.OverviewRow
func ToListOverviewRowResponse(rows []domain.OverviewRow) []OverviewRowResponse {
	res := make([]OverviewRowResponse, len(rows))
	for i, row := range rows {
		res[i] = ToOverviewRowResponse(row)
	}
	return res
}
