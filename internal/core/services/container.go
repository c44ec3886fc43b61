package services

import (
	portsrepo "github.com/bukukita/bkk_backend/internal/core/ports/repositories"
	portssvc "github.com/bukukita/bkk_backend/internal/core/ports/services"
	"github.com/bukukita/bkk_backend/internal/platform/config"
)

// Container holds all the services and manages their dependencies.
type Container struct {
	Auth        portssvc.AuthService
	Business    portssvc.BusinessService
	Account     portssvc.AccountService
	Transaction portssvc.TransactionService
	Reporting   portssvc.ReportingService
}

// NewContainer creates a new service container with properly initialized
// dependencies.
func NewContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *Container {
	// The business service and the account service reference each other:
	// business creation seeds the chart, account operations authorize through
	// business membership. Seeding happens inside business creation where the
	// caller is the owner, so the seeder instance carries no authorizer.
	seeder := NewAccountService(repos.AccountRepo)
	business := NewBusinessService(repos.BusinessRepo, seeder)

	account := NewAccountService(repos.AccountRepo,
		WithAccountBusinessAuthorizer(business))
	transaction := NewTransactionService(repos.TransactionRepo, repos.AccountRepo,
		WithTransactionBusinessAuthorizer(business))
	reporting := NewReportingService(repos.TransactionRepo, repos.AccountRepo,
		WithReportingBusinessAuthorizer(business))
	auth := NewAuthService(repos.UserRepo, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)

	return &Container{
		Auth:        auth,
		Business:    business,
		Account:     account,
		Transaction: transaction,
		Reporting:   reporting,
	}
}
