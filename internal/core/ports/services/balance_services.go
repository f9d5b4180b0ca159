package services

import (
	"context"

	"github.com/fust64/fust_beheer_app/internal/core/domain"
)

// BalanceReaderSvc exposes the balance engine: running balances for one
// partner and lifetime totals across all partners.
type BalanceReaderSvc interface {
	// GetPartnerLedger computes the chronologically ordered running-balance
	// ledger for one partner, including lifetime totals.
	GetPartnerLedger(ctx context.Context, partnerID int64) (*domain.PartnerLedger, error)

	// GetOverview computes lifetime totals and balances per container type for
	// every known partner. Partners without mutations appear with zero rows.
	GetOverview(ctx context.Context) ([]domain.OverviewRow, error)
}

// BalanceSvcFacade combines all balance-related service interfaces
type BalanceSvcFacade interface {
	BalanceReaderSvc
}
