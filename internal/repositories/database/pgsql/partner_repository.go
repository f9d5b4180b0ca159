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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPartnerRepository struct {
	BaseRepository
}

// newPgxPartnerRepository creates a new repository for counterparty data.
func newPgxPartnerRepository(pool *pgxpool.Pool) portsrepo.PartnerRepositoryFacade {
	return &PgxPartnerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PartnerRepositoryFacade = (*PgxPartnerRepository)(nil)

// SavePartner inserts a new counterparty. The code's unique constraint is the
// single place uniqueness is enforced; violations surface as ErrDuplicate so
// find-or-create callers can retry the lookup.
func (r *PgxPartnerRepository) SavePartner(ctx context.Context, partner domain.Partner) (*domain.Partner, error) {
	modelPartner := mapping.ToModelPartner(partner)

	query := `
		INSERT INTO counterparties (code, display_name, kind, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`

	err := r.Pool.QueryRow(ctx, query,
		modelPartner.Code,
		modelPartner.Name,
		modelPartner.Kind,
		modelPartner.CreatedAt,
	).Scan(&modelPartner.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return nil, apperrors.ErrDuplicate
			}
		}
		return nil, apperrors.NewAppError(500, "failed to save partner "+modelPartner.Code, err)
	}

	domainPartner := mapping.ToDomainPartner(modelPartner)
	return &domainPartner, nil
}

// FindPartnerByCode retrieves a counterparty by its unique code.
func (r *PgxPartnerRepository) FindPartnerByCode(ctx context.Context, code string) (*domain.Partner, error) {
	query := `
		SELECT id, code, display_name, kind, created_at
		FROM counterparties
		WHERE code = $1;
	`
	return r.findPartner(ctx, query, code)
}

// FindPartnerByID retrieves a counterparty by its surrogate key.
func (r *PgxPartnerRepository) FindPartnerByID(ctx context.Context, partnerID int64) (*domain.Partner, error) {
	query := `
		SELECT id, code, display_name, kind, created_at
		FROM counterparties
		WHERE id = $1;
	`
	return r.findPartner(ctx, query, partnerID)
}

func (r *PgxPartnerRepository) findPartner(ctx context.Context, query string, arg any) (*domain.Partner, error) {
	var modelPartner models.Partner
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelPartner.ID,
		&modelPartner.Code,
		&modelPartner.Name,
		&modelPartner.Kind,
		&modelPartner.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find partner: %v", apperrors.ErrUnavailable, err)
	}

	domainPartner := mapping.ToDomainPartner(modelPartner)
	return &domainPartner, nil
}

// ListPartners retrieves all counterparties ordered by kind then name. The
// result is always the complete set; nothing downstream may aggregate over a
// partial registry.
func (r *PgxPartnerRepository) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	query := `
		SELECT id, code, display_name, kind, created_at
		FROM counterparties
		ORDER BY kind, display_name, code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query partners: %v", apperrors.ErrUnavailable, err)
	}
	defer rows.Close()

	modelPartners, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Partner, error) {
		var partner models.Partner
		err := row.Scan(
			&partner.ID,
			&partner.Code,
			&partner.Name,
			&partner.Kind,
			&partner.CreatedAt,
		)
		return partner, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Partner{}, nil
		}
		return nil, fmt.Errorf("%w: failed to scan partners: %v", apperrors.ErrUnavailable, err)
	}

	return mapping.ToDomainPartnerSlice(modelPartners), nil
}
