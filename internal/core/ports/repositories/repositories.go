package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// container during wiring.
type RepositoryProvider struct {
	RateRepo      RateRepositoryFacade
	OperationRepo OperationRepositoryFacade
	UserRepo      UserRepositoryFacade
}
