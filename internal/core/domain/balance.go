package domain

// LedgerEntry is a mutation annotated with the cumulative balance per
// container type after applying it, in chronological order.
type LedgerEntry struct {
	Mutation
	DeltaCage    int `json:"deltaCage"`
	DeltaPlate   int `json:"deltaPlate"`
	RunningCage  int `json:"runningCage"`
	RunningPlate int `json:"runningPlate"`
}

// Totals holds lifetime loaded/unloaded sums for one partner. The order of the
// underlying events does not affect these values.
type Totals struct {
	LoadedCage    int `json:"loadedCage"`
	LoadedPlate   int `json:"loadedPlate"`
	UnloadedCage  int `json:"unloadedCage"`
	UnloadedPlate int `json:"unloadedPlate"`
}

// CageBalance returns the lifetime cage balance (unloaded minus loaded).
func (t Totals) CageBalance() int {
	return t.UnloadedCage - t.LoadedCage
}

// PlateBalance returns the lifetime plate balance (unloaded minus loaded).
func (t Totals) PlateBalance() int {
	return t.UnloadedPlate - t.LoadedPlate
}

// OverviewRow is one partner's lifetime totals and balances per container
// type, as shown on the global overview.
type OverviewRow struct {
	PartnerID          int64       `json:"partnerID"`
	Code               string      `json:"code"`
	Name               string      `json:"name"`
	Kind               PartnerKind `json:"kind"`
	LoadedCageTotal    int         `json:"loadedCageTotal"`
	UnloadedCageTotal  int         `json:"unloadedCageTotal"`
	CageBalance        int         `json:"cageBalance"`
	LoadedPlateTotal   int         `json:"loadedPlateTotal"`
	UnloadedPlateTotal int         `json:"unloadedPlateTotal"`
	PlateBalance       int         `json:"plateBalance"`
}

// PartnerLedger is the full detail view for one partner: its chronological
// entries with running balances plus lifetime totals.
type PartnerLedger struct {
	Partner Partner       `json:"partner"`
	Entries []LedgerEntry `json:"entries"`
	Totals  Totals        `json:"totals"`
}

// BalanceMeaning describes who owes whom for a balance value.
type BalanceMeaning string

const (
	MeaningSettled        BalanceMeaning = "settled"
	MeaningOwedToBusiness BalanceMeaning = "owed_to_business"
	MeaningOwedByBusiness BalanceMeaning = "owed_by_business"
)

// MeaningFor maps a raw balance to its interpretation for the given partner
// kind. For a customer a positive balance means the business is owed units;
// for a supplier the same positive balance means the business owes units back.
func MeaningFor(kind PartnerKind, balance int) BalanceMeaning {
	if balance == 0 {
		return MeaningSettled
	}
	positive := balance > 0
	if kind == KindSupplier {
		positive = !positive
	}
	if positive {
		return MeaningOwedToBusiness
	}
	return MeaningOwedByBusiness
}
