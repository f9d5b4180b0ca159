package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fust64/fust_beheer_app/internal/apperrors"
	"github.com/fust64/fust_beheer_app/internal/core/domain"
	portsrepo "github.com/fust64/fust_beheer_app/internal/core/ports/repositories"
	portssvc "github.com/fust64/fust_beheer_app/internal/core/ports/services"
	"github.com/fust64/fust_beheer_app/internal/dto"
)

type mutationService struct {
	mutationRepo portsrepo.MutationRepositoryFacade
	partnerSvc   portssvc.PartnerSvcFacade
}

// NewMutationService creates the event log service. Partner resolution is
// delegated so that manual entry and CSV import share one append path.
func NewMutationService(mutationRepo portsrepo.MutationRepositoryFacade, partnerSvc portssvc.PartnerSvcFacade) portssvc.MutationSvcFacade {
	return &mutationService{
		mutationRepo: mutationRepo,
		partnerSvc:   partnerSvc,
	}
}

func (s *mutationService) CreateMutation(ctx context.Context, req dto.CreateMutationRequest) (*domain.Mutation, error) {
	eventDate, err := time.Parse(domain.EventDateFormat, req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("%w: eventDate must have format YYYY-MM-DD", apperrors.ErrValidation)
	}
	if req.LoadedCage < 0 || req.LoadedPlate < 0 || req.UnloadedCage < 0 || req.UnloadedPlate < 0 {
		return nil, fmt.Errorf("%w: container counts must not be negative", apperrors.ErrValidation)
	}

	// Unknown partners are created on first use; manual entry without a kind
	// hint defaults to customer.
	kind := domain.PartnerKind(req.Kind)
	if req.Kind == "" {
		kind = domain.KindCustomer
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: kind must be customer or supplier", apperrors.ErrValidation)
	}

	partner, err := s.partnerSvc.ResolvePartner(ctx, req.PartnerCode, kind)
	if err != nil {
		return nil, err
	}

	mutation := domain.Mutation{
		PartnerID:     partner.ID,
		EventDate:     eventDate,
		LoadedCage:    req.LoadedCage,
		LoadedPlate:   req.LoadedPlate,
		UnloadedCage:  req.UnloadedCage,
		UnloadedPlate: req.UnloadedPlate,
	}

	created, err := s.mutationRepo.SaveMutation(ctx, mutation)
	if err != nil {
		return nil, fmt.Errorf("failed to create mutation in service: %w", err)
	}
	return created, nil
}

func (s *mutationService) ListMutations(ctx context.Context) ([]domain.MutationDetail, error) {
	mutations, err := s.mutationRepo.ListMutationDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mutations in service: %w", err)
	}
	if mutations == nil {
		return []domain.MutationDetail{}, nil
	}
	return mutations, nil
}

func (s *mutationService) DeleteMutation(ctx context.Context, mutationID int64) error {
	if err := s.mutationRepo.DeleteMutation(ctx, mutationID); err != nil {
		return fmt.Errorf("failed to delete mutation %d in service: %w", mutationID, err)
	}
	return nil
}
