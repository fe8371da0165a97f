package pgsql

import (
	portsrepo "github.com/exchwatch/currency_exchange_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx repositories over one pool.
func NewRepositoryProvider(db PGXPool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RateRepo:      NewPgxRateRepository(db),
		OperationRepo: NewPgxOperationRepository(db),
		UserRepo:      NewPgxUserRepository(db),
	}
}

// Compile-time interface implementation checks.
var (
	_ portsrepo.RateRepositoryFacade      = (*PgxRateRepository)(nil)
	_ portsrepo.OperationRepositoryFacade = (*PgxOperationRepository)(nil)
	_ portsrepo.UserRepositoryFacade      = (*PgxUserRepository)(nil)
)
