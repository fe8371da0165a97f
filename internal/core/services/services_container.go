package services

import (
	portsrepo "github.com/exchwatch/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/exchwatch/currency_exchange_app/internal/core/ports/services"
	"github.com/exchwatch/currency_exchange_app/internal/platform/config"
	"github.com/exchwatch/currency_exchange_app/internal/utils"
)

// NewServiceContainer creates a service container with properly initialized
// dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, clock utils.Clock) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Rate = NewRateService(repos.RateRepo, cfg.PageSize)
	container.Operation = NewOperationService(repos.OperationRepo, repos.RateRepo, clock)
	container.User = NewUserService(repos.UserRepo)

	return container
}

// Compile-time interface implementation checks.
var (
	_ portssvc.RateSvcFacade      = (*RateService)(nil)
	_ portssvc.OperationSvcFacade = (*OperationService)(nil)
	_ portssvc.UserSvcFacade      = (*UserService)(nil)
)
