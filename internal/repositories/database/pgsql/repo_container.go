package pgsql

import (
	portsrepo "github.com/SscSPs/cashflow_dashboard/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EntryRepo:       newPgxEntryRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		ResponsibleRepo: newPgxResponsibleRepository(dbPool),
		TagRepo:         newPgxTagRepository(dbPool),
		GoalRepo:        newPgxGoalRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
