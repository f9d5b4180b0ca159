package services

import (
	portsrepo "github.com/fust64/fust_beheer_app/internal/core/ports/repositories"
	portssvc "github.com/fust64/fust_beheer_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Partner resolution comes first since the mutation service depends on it
	container.Partner = NewPartnerService(repos.PartnerRepo)
	container.Mutation = NewMutationService(repos.MutationRepo, container.Partner)
	container.Balance = NewBalanceService(repos.PartnerRepo, repos.MutationRepo)
	container.Importer = NewCSVImportService(container.Mutation)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.PartnerSvcFacade   = (*partnerService)(nil)
	_ portssvc.MutationSvcFacade  = (*mutationService)(nil)
	_ portssvc.BalanceSvcFacade   = (*balanceService)(nil)
	_ portssvc.CSVImportSvcFacade = (*csvImportService)(nil)
)
