package models

import "time"

// Mutation mirrors the events table. Loaded/unloaded totals are derived on
// read and intentionally have no column here.
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

// MutationWithPartner is the joined row shape returned by list queries that
// include partner identity.
type MutationWithPartner struct {
	Mutation
	PartnerCode string `json:"partnerCode"`
	PartnerName string `json:"partnerName"`
	PartnerKind string `json:"partnerKind"`
}
