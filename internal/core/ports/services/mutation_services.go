package services

import (
	"context"

	"github.com/fust64/fust_beheer_app/internal/core/domain"
	"github.com/fust64/fust_beheer_app/internal/dto"
)

// MutationReaderSvc defines read operations for mutation data
type MutationReaderSvc interface {
	// ListMutations retrieves all mutations with partner identity, newest first.
	ListMutations(ctx context.Context) ([]domain.MutationDetail, error)
}

// MutationWriterSvc defines write operations for mutation data
type MutationWriterSvc interface {
	// CreateMutation resolves the partner by code (creating it if needed) and
	// appends a new exchange event.
	CreateMutation(ctx context.Context, req dto.CreateMutationRequest) (*domain.Mutation, error)

	// DeleteMutation removes a single mutation by id.
	DeleteMutation(ctx context.Context, mutationID int64) error
}

// MutationSvcFacade combines all mutation-related service interfaces
type MutationSvcFacade interface {
	MutationReaderSvc
	MutationWriterSvc
}
