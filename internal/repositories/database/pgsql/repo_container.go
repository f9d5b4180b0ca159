package pgsql

import (
	portsrepo "github.com/fust64/fust_beheer_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PartnerRepo:  newPgxPartnerRepository(dbPool),
		MutationRepo: newPgxMutationRepository(dbPool),
	}
}
