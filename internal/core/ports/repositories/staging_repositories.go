package repositories

import (
	"context"

	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
)

// StagingReader defines read operations for the staging tables
type StagingReader interface {
	// ListStagingCurrenciesByBatch retrieves all staging currency records of a batch.
	ListStagingCurrenciesByBatch(ctx context.Context, batchID int64) ([]domain.StagingCurrency, error)

	// ListStagingForexByBatch retrieves all staging forex records of a batch.
	ListStagingForexByBatch(ctx context.Context, batchID int64) ([]domain.StagingForex, error)

	// ListStagingOffersByBatch retrieves all staging offer records of a batch.
	ListStagingOffersByBatch(ctx context.Context, batchID int64) ([]domain.StagingOffer, error)

	// ListStagingCurrenciesInError retrieves staging currency records with
	// in_error set and ignore unset, across all batches.
	ListStagingCurrenciesInError(ctx context.Context) ([]domain.StagingCurrency, error)

	// ListStagingForexInError retrieves staging forex records with in_error
	// set and ignore unset, across all batches.
	ListStagingForexInError(ctx context.Context) ([]domain.StagingForex, error)

	// ListStagingOffersInError retrieves staging offer records with in_error
	// set and ignore unset, across all batches.
	ListStagingOffersInError(ctx context.Context) ([]domain.StagingOffer, error)
}

// StagingWriter defines status updates on staging records
type StagingWriter interface {
	// UpdateStagingStatus stamps the checkout outcome onto one staging record.
	UpdateStagingStatus(ctx context.Context, entity domain.EntityType, id int64, status domain.CheckoutStatus) error
}

// StagingRepositoryFacade combines all staging-related repository interfaces
type StagingRepositoryFacade interface {
	StagingReader
	StagingWriter
}

// BatchRepositoryFacade defines operations on load batches
type BatchRepositoryFacade interface {
	// FindBatchByID retrieves a batch by id.
	FindBatchByID(ctx context.Context, id int64) (*domain.Batch, error)

	// MarkBatchProcessed sets the processed flag of a batch.
	MarkBatchProcessed(ctx context.Context, id int64) error
}
