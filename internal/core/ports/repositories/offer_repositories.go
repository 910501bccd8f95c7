package repositories

import (
	"context"

	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
)

// OfferReader defines read operations for the two offer fact tables
type OfferReader interface {
	// FindValidOfferByID retrieves a valid offer by its warehouse id.
	FindValidOfferByID(ctx context.Context, id int64) (*domain.ValidOffer, error)

	// FindInvalidOfferByID retrieves an invalid offer by its warehouse id.
	FindInvalidOfferByID(ctx context.Context, id int64) (*domain.InvalidOffer, error)

	// FindOfferByKey retrieves an offer from the given destination table by
	// its business key.
	FindOfferByKey(ctx context.Context, dest domain.Destination, key domain.OfferKey) (*domain.Offer, error)

	// ListValidOffers retrieves a page of valid offers.
	ListValidOffers(ctx context.Context, limit, offset int) ([]domain.ValidOffer, error)

	// ListInvalidOffers retrieves a page of invalid offers.
	ListInvalidOffers(ctx context.Context, limit, offset int) ([]domain.InvalidOffer, error)
}

// OfferWriter defines write operations for the two offer fact tables
type OfferWriter interface {
	// InsertOffer persists a new offer into the given destination table and
	// returns it with its assigned id. Conflict reporting follows the same
	// contract as InsertCurrency.
	InsertOffer(ctx context.Context, dest domain.Destination, offer domain.Offer) (*domain.Offer, error)

	// SetValidOfferInvalid updates the invalid flag of a valid offer. This is
	// the only mutation the warehouse permits after insertion.
	SetValidOfferInvalid(ctx context.Context, id int64, invalid bool) error
}

// OfferRepositoryFacade combines all offer-related repository interfaces
type OfferRepositoryFacade interface {
	OfferReader
	OfferWriter
}
