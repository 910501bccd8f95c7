package repositories

import (
	"context"

	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
)

// CurrencyReader defines read operations for the currencies dimension table
type CurrencyReader interface {
	// FindCurrencyByID retrieves a currency by its warehouse id.
	FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error)

	// FindCurrencyByCode retrieves a currency by its 3-letter code.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves a page of currencies ordered by code.
	ListCurrencies(ctx context.Context, limit, offset int) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for the currencies dimension table
type CurrencyWriter interface {
	// InsertCurrency persists a new currency and returns it with its assigned
	// id. A uniqueness conflict is reported as apperrors.ErrDuplicate; any
	// other integrity violation as apperrors.ErrRejected.
	InsertCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
