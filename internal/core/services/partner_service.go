package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fust64/fust_beheer_app/internal/apperrors"
	"github.com/fust64/fust_beheer_app/internal/core/domain"
	portsrepo "github.com/fust64/fust_beheer_app/internal/core/ports/repositories"
	portssvc "github.com/fust64/fust_beheer_app/internal/core/ports/services"
	"github.com/fust64/fust_beheer_app/internal/dto"
)

type partnerService struct {
	partnerRepo portsrepo.PartnerRepositoryFacade
}

// NewPartnerService creates the partner registry service.
func NewPartnerService(partnerRepo portsrepo.PartnerRepositoryFacade) portssvc.PartnerSvcFacade {
	return &partnerService{partnerRepo: partnerRepo}
}

func (s *partnerService) CreatePartner(ctx context.Context, req dto.CreatePartnerRequest) (*domain.Partner, error) {
	kind := domain.PartnerKind(req.Kind)
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: kind must be customer or supplier", apperrors.ErrValidation)
	}
	if req.Code == "" {
		return nil, fmt.Errorf("%w: code is required", apperrors.ErrValidation)
	}

	partner := domain.Partner{
		Code:      req.Code,
		Name:      req.Name,
		Kind:      kind,
		CreatedAt: time.Now(),
	}

	created, err := s.partnerRepo.SavePartner(ctx, partner)
	if err != nil {
		return nil, fmt.Errorf("failed to create partner in service: %w", err)
	}
	return created, nil
}

// ResolvePartner implements find-or-create by code. A creation losing the race
// against a concurrent insert of the same code falls back to a second lookup
// instead of failing; this is the only place code uniqueness is enforced.
func (s *partnerService) ResolvePartner(ctx context.Context, code string, kind domain.PartnerKind) (*domain.Partner, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", apperrors.ErrValidation)
	}

	partner, err := s.partnerRepo.FindPartnerByCode(ctx, code)
	if err == nil {
		if kind.IsValid() && partner.Kind != kind {
			// The stored kind wins; the incoming hint is ignored. Changing it
			// retroactively would flip the sign interpretation of the
			// partner's entire history.
			slog.Warn("partner kind hint ignored",
				slog.String("code", code),
				slog.String("stored_kind", string(partner.Kind)),
				slog.String("ignored_kind", string(kind)))
		}
		return partner, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up partner %s: %w", code, err)
	}

	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: kind must be customer or supplier", apperrors.ErrValidation)
	}

	created, err := s.partnerRepo.SavePartner(ctx, domain.Partner{
		Code:      code,
		Kind:      kind,
		CreatedAt: time.Now(),
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a creation race; the partner exists now.
			return s.partnerRepo.FindPartnerByCode(ctx, code)
		}
		return nil, fmt.Errorf("failed to create partner %s: %w", code, err)
	}
	return created, nil
}

func (s *partnerService) GetPartnerByID(ctx context.Context, partnerID int64) (*domain.Partner, error) {
	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get partner by id in service: %w", err)
	}
	return partner, nil
}

func (s *partnerService) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	partners, err := s.partnerRepo.ListPartners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list partners in service: %w", err)
	}
	// Return empty slice if no partners found, not nil
	if partners == nil {
		return []domain.Partner{}, nil
	}
	return partners, nil
}
