package services

import (
	"context"
	"fmt"

	"github.com/fust64/fust_beheer_app/internal/core/domain"
	portsrepo "github.com/fust64/fust_beheer_app/internal/core/ports/repositories"
	portssvc "github.com/fust64/fust_beheer_app/internal/core/ports/services"
	"github.com/fust64/fust_beheer_app/internal/utils/fustmath"
)

type balanceService struct {
	partnerRepo  portsrepo.PartnerRepositoryFacade
	mutationRepo portsrepo.MutationRepositoryFacade
}

// NewBalanceService creates the balance engine. It is a pure computation over
// fully materialized event sets; all I/O happens in the repositories before
// aggregation starts.
func NewBalanceService(partnerRepo portsrepo.PartnerRepositoryFacade, mutationRepo portsrepo.MutationRepositoryFacade) portssvc.BalanceSvcFacade {
	return &balanceService{
		partnerRepo:  partnerRepo,
		mutationRepo: mutationRepo,
	}
}

func (s *balanceService) GetPartnerLedger(ctx context.Context, partnerID int64) (*domain.PartnerLedger, error) {
	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load partner %d for ledger: %w", partnerID, err)
	}

	// A failed or partial read fails the whole aggregation; a balance computed
	// from an incomplete event set would be silently wrong.
	mutations, err := s.mutationRepo.ListMutationsByPartner(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mutations for partner %d: %w", partnerID, err)
	}

	return &domain.PartnerLedger{
		Partner: *partner,
		Entries: fustmath.RunningBalances(mutations),
		Totals:  fustmath.LifetimeTotals(mutations),
	}, nil
}

func (s *balanceService) GetOverview(ctx context.Context) ([]domain.OverviewRow, error) {
	partners, err := s.partnerRepo.ListPartners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load partners for overview: %w", err)
	}
	mutations, err := s.mutationRepo.ListMutations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load mutations for overview: %w", err)
	}

	grouped := fustmath.GroupByPartner(mutations)

	rows := make([]domain.OverviewRow, len(partners))
	for i, partner := range partners {
		// Partners without mutations get an all-zero row, never an error.
		totals := fustmath.LifetimeTotals(grouped[partner.ID])
		rows[i] = domain.OverviewRow{
			PartnerID:          partner.ID,
			Code:               partner.Code,
			Name:               partner.Name,
			Kind:               partner.Kind,
			LoadedCageTotal:    totals.LoadedCage,
			UnloadedCageTotal:  totals.UnloadedCage,
			CageBalance:        totals.CageBalance(),
			LoadedPlateTotal:   totals.LoadedPlate,
			UnloadedPlateTotal: totals.UnloadedPlate,
			PlateBalance:       totals.PlateBalance(),
		}
	}
	return rows, nil
}
