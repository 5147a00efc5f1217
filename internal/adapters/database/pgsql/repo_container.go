package pgsql

import (
	portsrepo "collectbox/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryContainer bundles the pgsql-backed repositories.
type RepositoryContainer struct {
	Box      portsrepo.BoxRepositoryFacade
	Event    portsrepo.EventRepositoryFacade
	Currency portsrepo.CurrencyRepositoryFacade
}

// NewRepositoryContainer creates all repositories backed by the given pool.
func NewRepositoryContainer(pool *pgxpool.Pool) *RepositoryContainer {
	return &RepositoryContainer{
		Box:      NewBoxRepository(pool),
		Event:    NewEventRepository(pool),
		Currency: NewCurrencyRepository(pool),
	}
}
