package pgsql

import (
	portsrepo "github.com/bukukita/bkk_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		BusinessRepo:    newPgxBusinessRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
