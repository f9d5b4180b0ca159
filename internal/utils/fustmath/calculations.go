package fustmath

import (
	"sort"

	"github.com/fust64/fust_beheer_app/internal/core/domain"
)

// SortChronological orders mutations ascending by event date, breaking ties on
// the store-assigned creation timestamp. Event dates alone are not fine-grained
// enough to separate same-day entries; insertion order is the only secondary
// signal available. The sort is stable, so mutations sharing both date and
// creation timestamp keep their relative input order (callers must not rely on
// that degenerate case).
func SortChronological(mutations []domain.Mutation) {
	sort.SliceStable(mutations, func(i, j int) bool {
		if !mutations[i].EventDate.Equal(mutations[j].EventDate) {
			return mutations[i].EventDate.Before(mutations[j].EventDate)
		}
		return mutations[i].CreatedAt.Before(mutations[j].CreatedAt)
	})
}

// RunningBalances sorts a copy of the given mutations chronologically and
// annotates each with the cumulative per-type balance after applying it:
// balance += unloaded - loaded. The final entry's running values equal the
// lifetime balances from LifetimeTotals.
func RunningBalances(mutations []domain.Mutation) []domain.LedgerEntry {
	sorted := make([]domain.Mutation, len(mutations))
	copy(sorted, mutations)
	SortChronological(sorted)

	entries := make([]domain.LedgerEntry, len(sorted))
	var cage, plate int
	for i, m := range sorted {
		cage += m.CageDelta()
		plate += m.PlateDelta()
		entries[i] = domain.LedgerEntry{
			Mutation:     m,
			DeltaCage:    m.CageDelta(),
			DeltaPlate:   m.PlateDelta(),
			RunningCage:  cage,
			RunningPlate: plate,
		}
	}
	return entries
}

// LifetimeTotals sums loaded and unloaded counts per container type. The
// result is independent of input order.
func LifetimeTotals(mutations []domain.Mutation) domain.Totals {
	var t domain.Totals
	for _, m := range mutations {
		t.LoadedCage += m.LoadedCage
		t.LoadedPlate += m.LoadedPlate
		t.UnloadedCage += m.UnloadedCage
		t.UnloadedPlate += m.UnloadedPlate
	}
	return t
}

// GroupByPartner buckets mutations by partner id.
func GroupByPartner(mutations []domain.Mutation) map[int64][]domain.Mutation {
	grouped := make(map[int64][]domain.Mutation)
	for _, m := range mutations {
		grouped[m.PartnerID] = append(grouped[m.PartnerID], m)
	}
	return grouped
}
