package repositories

import (
	"context"

	"github.com/fust64/fust_beheer_app/internal/core/domain"
)

// MutationReader defines read operations for mutation data. Every list method
// returns the complete result set in one call: the balance engine must never
// aggregate over a partial read.
type MutationReader interface {
	// ListMutationDetails retrieves all mutations joined with partner
	// identity, newest first.
	ListMutationDetails(ctx context.Context) ([]domain.MutationDetail, error)

	// ListMutationsByPartner retrieves every mutation for one partner, in
	// store order (the engine re-sorts).
	ListMutationsByPartner(ctx context.Context, partnerID int64) ([]domain.Mutation, error)

	// ListMutations retrieves every mutation across all partners.
	ListMutations(ctx context.Context) ([]domain.Mutation, error)
}

// MutationWriter defines write operations for mutation data
type MutationWriter interface {
	// SaveMutation inserts a new mutation and returns it with the
	// store-assigned id and creation timestamp. created_at is assigned
	// atomically with the insert and later serves as the ordering tie-breaker.
	SaveMutation(ctx context.Context, mutation domain.Mutation) (*domain.Mutation, error)

	// DeleteMutation removes a mutation by id; apperrors.ErrNotFound if it
	// does not exist.
	DeleteMutation(ctx context.Context, mutationID int64) error
}

// MutationRepositoryFacade combines all mutation-related repository interfaces
type MutationRepositoryFacade interface {
	MutationReader
	MutationWriter
}
