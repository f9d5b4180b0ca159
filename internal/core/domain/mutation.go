package domain

import "time"

// EventDateFormat is the wire format for event dates. Event dates carry no
// time component in business terms.
const EventDateFormat = "2006-01-02"

// Mutation is a single exchange event: how many containers of each type were
// handed to (loaded) and received back from (unloaded) a partner on a given
// date. Mutations are append/delete only, never updated in place.
type Mutation struct {
	ID            int64     `json:"id"`
	PartnerID     int64     `json:"partnerID"`
	EventDate     time.Time `json:"eventDate"`
	LoadedCage    int       `json:"loadedCage"`
	LoadedPlate   int       `json:"loadedPlate"`
	UnloadedCage  int       `json:"unloadedCage"`
	UnloadedPlate int       `json:"unloadedPlate"`
	CreatedAt     time.Time `json:"createdAt"`
}

// LoadedTotal returns the combined loaded count across both container types.
// Totals are derived on read, never stored.
func (m Mutation) LoadedTotal() int {
	return m.LoadedCage + m.LoadedPlate
}

// UnloadedTotal returns the combined unloaded count across both container types.
func (m Mutation) UnloadedTotal() int {
	return m.UnloadedCage + m.UnloadedPlate
}

// CageDelta is the contribution of this single event to the cage balance,
// independent of any running accumulation.
func (m Mutation) CageDelta() int {
	return m.UnloadedCage - m.LoadedCage
}

// PlateDelta is the contribution of this single event to the plate balance.
func (m Mutation) PlateDelta() int {
	return m.UnloadedPlate - m.LoadedPlate
}

// MutationDetail is a mutation joined with its partner's identifying fields,
// used by list views that span partners.
type MutationDetail struct {
	Mutation
	PartnerCode string      `json:"partnerCode"`
	PartnerName string      `json:"partnerName"`
	PartnerKind PartnerKind `json:"partnerKind"`
}
