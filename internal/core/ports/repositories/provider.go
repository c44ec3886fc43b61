package repositories

// RepositoryProvider bundles the concrete repositories for injection into the
// service layer.
type RepositoryProvider struct {
	AccountRepo     AccountRepository
	TransactionRepo TransactionRepository
	BusinessRepo    BusinessRepository
	UserRepo        UserRepository
}
