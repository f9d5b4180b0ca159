package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fust64/fust_beheer_app/internal/apperrors"
	"github.com/fust64/fust_beheer_app/internal/core/domain"
	portsrepo "github.com/fust64/fust_beheer_app/internal/core/ports/repositories"
	"github.com/fust64/fust_beheer_app/internal/models"
	"github.com/fust64/fust_beheer_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMutationRepository struct {
	BaseRepository
}

// newPgxMutationRepository creates a new repository for exchange event data.
func newPgxMutationRepository(pool *pgxpool.Pool) portsrepo.MutationRepositoryFacade {
	return &PgxMutationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.MutationRepositoryFacade = (*PgxMutationRepository)(nil)

// SaveMutation appends a new exchange event. created_at is assigned by the
// database inside the insert so same-day events get a trustworthy tie-breaker.
func (r *PgxMutationRepository) SaveMutation(ctx context.Context, mutation domain.Mutation) (*domain.Mutation, error) {
	modelMutation := mapping.ToModelMutation(mutation)

	query := `
		INSERT INTO events (counterparty_id, event_date, loaded_cage, loaded_plate, unloaded_cage, unloaded_plate)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`

	err := r.Pool.QueryRow(ctx, query,
		modelMutation.PartnerID,
		modelMutation.EventDate,
		modelMutation.LoadedCage,
		modelMutation.LoadedPlate,
		modelMutation.UnloadedCage,
		modelMutation.UnloadedPlate,
	).Scan(&modelMutation.ID, &modelMutation.CreatedAt)

	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to save mutation for partner %d", mutation.PartnerID), err)
	}

	domainMutation := mapping.ToDomainMutation(modelMutation)
	return &domainMutation, nil
}

// DeleteMutation removes a single event by id.
func (r *PgxMutationRepository) DeleteMutation(ctx context.Context, mutationID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM events WHERE id = $1;`, mutationID)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete mutation %d", mutationID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListMutationsByPartner retrieves every event for one counterparty. The
// balance engine re-sorts, so store order only needs to be deterministic.
func (r *PgxMutationRepository) ListMutationsByPartner(ctx context.Context, partnerID int64) ([]domain.Mutation, error) {
	query := `
		SELECT id, counterparty_id, event_date, loaded_cage, loaded_plate, unloaded_cage, unloaded_plate, created_at
		FROM events
		WHERE counterparty_id = $1
		ORDER BY id;
	`
	return r.listMutations(ctx, query, partnerID)
}

// ListMutations retrieves every event across all counterparties.
func (r *PgxMutationRepository) ListMutations(ctx context.Context) ([]domain.Mutation, error) {
	query := `
		SELECT id, counterparty_id, event_date, loaded_cage, loaded_plate, unloaded_cage, unloaded_plate, created_at
		FROM events
		ORDER BY id;
	`
	return r.listMutations(ctx, query)
}

func (r *PgxMutationRepository) listMutations(ctx context.Context, query string, args ...any) ([]domain.Mutation, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query mutations: %v", apperrors.ErrUnavailable, err)
	}
	defer rows.Close()

	modelMutations, err := pgx.CollectRows(rows, scanMutation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Mutation{}, nil
		}
		return nil, fmt.Errorf("%w: failed to scan mutations: %v", apperrors.ErrUnavailable, err)
	}

	return mapping.ToDomainMutationSlice(modelMutations), nil
}

func scanMutation(row pgx.CollectableRow) (models.Mutation, error) {
	var mutation models.Mutation
	err := row.Scan(
		&mutation.ID,
		&mutation.PartnerID,
		&mutation.EventDate,
		&mutation.LoadedCage,
		&mutation.LoadedPlate,
		&mutation.UnloadedCage,
		&mutation.UnloadedPlate,
		&mutation.CreatedAt,
	)
	return mutation, err
}

// ListMutationDetails retrieves all events joined with partner identity,
// newest first, for the management list view.
func (r *PgxMutationRepository) ListMutationDetails(ctx context.Context) ([]domain.MutationDetail, error) {
	query := `
		SELECT m.id, m.counterparty_id, m.event_date, m.loaded_cage, m.loaded_plate, m.unloaded_cage, m.unloaded_plate, m.created_at,
			p.code, p.display_name, p.kind
		FROM events m
		JOIN counterparties p ON m.counterparty_id = p.id
		ORDER BY m.event_date DESC, m.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query mutation details: %v", apperrors.ErrUnavailable, err)
	}
	defer rows.Close()

	modelDetails, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MutationWithPartner, error) {
		var detail models.MutationWithPartner
		err := row.Scan(
			&detail.ID,
			&detail.PartnerID,
			&detail.EventDate,
			&detail.LoadedCage,
			&detail.LoadedPlate,
			&detail.UnloadedCage,
			&detail.UnloadedPlate,
			&detail.CreatedAt,
			&detail.PartnerCode,
			&detail.PartnerName,
			&detail.PartnerKind,
		)
		return detail, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.MutationDetail{}, nil
		}
		return nil, fmt.Errorf("%w: failed to scan mutation details: %v", apperrors.ErrUnavailable, err)
	}

	return mapping.ToDomainMutationDetailSlice(modelDetails), nil
}
