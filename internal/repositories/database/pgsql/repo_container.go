package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/hqdw/hq_warehouse_app/internal/core/ports/repositories"
)

// NewRepositoryProvider constructs every pgsql repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo: newPgxCurrencyRepository(dbPool),
		ForexRepo:    newPgxForexRepository(dbPool),
		OfferRepo:    newPgxOfferRepository(dbPool),
		StagingRepo:  newPgxStagingRepository(dbPool),
		BatchRepo:    newPgxBatchRepository(dbPool),
	}
}
