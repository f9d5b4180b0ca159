package domain

import "time"

// PartnerKind distinguishes customers from suppliers. The raw balance
// arithmetic is identical for both; only the user-facing interpretation of the
// sign differs (see MeaningFor).
type PartnerKind string

const (
	KindCustomer PartnerKind = "customer"
	KindSupplier PartnerKind = "supplier"
)

// IsValid reports whether k is one of the known partner kinds.
func (k PartnerKind) IsValid() bool {
	return k == KindCustomer || k == KindSupplier
}

// Partner represents a counterparty (customer or supplier) exchanging
// containers with the business. Partners are never deleted; the code is the
// unique human-readable identifier.
type Partner struct {
	ID        int64       `json:"id"`
	Code      string      `json:"code"`
	Name      string      `json:"name"`
	Kind      PartnerKind `json:"kind"`
	CreatedAt time.Time   `json:"createdAt"`
}
