package repositories

import (
	"context"
	"time"

	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
)

// ForexReader defines read operations for the forex fact table
type ForexReader interface {
	// FindForexByID retrieves a rate by its warehouse id.
	FindForexByID(ctx context.Context, id int64) (*domain.Forex, error)

	// FindForexByPairAndDate retrieves the rate for an exact
	// (from, to, date_valid) triple.
	FindForexByPairAndDate(ctx context.Context, fromID, toID int64, date time.Time) (*domain.Forex, error)

	// FindLatestForexAtOrBefore retrieves the most recent rate for the pair
	// with date_valid <= date.
	FindLatestForexAtOrBefore(ctx context.Context, fromID, toID int64, date time.Time) (*domain.Forex, error)

	// ListForex retrieves a page of rates ordered by pair and date descending.
	ListForex(ctx context.Context, limit, offset int) ([]domain.Forex, error)
}

// ForexWriter defines write operations for the forex fact table
type ForexWriter interface {
	// InsertForex persists a new rate and returns it with its assigned id.
	// Conflict reporting follows the same contract as InsertCurrency.
	InsertForex(ctx context.Context, forex domain.Forex) (*domain.Forex, error)
}

// ForexRepositoryFacade combines all forex-related repository interfaces
type ForexRepositoryFacade interface {
	ForexReader
	ForexWriter
}
