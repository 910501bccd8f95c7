package services

import (
	"context"
	"fmt"

	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
	portsrepo "github.com/hqdw/hq_warehouse_app/internal/core/ports/repositories"
)

// browsePageSize is the fixed page length of warehouse list views.
const browsePageSize = 12

// BrowseService exposes read access to the warehouse tables plus the single
// permitted update: flipping a valid offer's invalid flag.
type BrowseService struct {
	currencies portsrepo.CurrencyReader
	rates      portsrepo.ForexReader
	offers     portsrepo.OfferRepositoryFacade
}

// NewBrowseService creates a browse service over the warehouse repositories.
func NewBrowseService(currencies portsrepo.CurrencyReader, rates portsrepo.ForexReader, offers portsrepo.OfferRepositoryFacade) *BrowseService {
	return &BrowseService{currencies: currencies, rates: rates, offers: offers}
}

// ListCurrencies returns one page of currencies. Pages are 1-based.
func (s *BrowseService) ListCurrencies(ctx context.Context, page int) ([]domain.Currency, error) {
	limit, offset := pageBounds(page)
	currencies, err := s.currencies.ListCurrencies(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	return currencies, nil
}

// GetCurrency returns one currency by warehouse id.
func (s *BrowseService) GetCurrency(ctx context.Context, id int64) (*domain.Currency, error) {
	return s.currencies.FindCurrencyByID(ctx, id)
}

// ListForex returns one page of exchange rates.
func (s *BrowseService) ListForex(ctx context.Context, page int) ([]domain.Forex, error) {
	limit, offset := pageBounds(page)
	rates, err := s.rates.ListForex(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list forex: %w", err)
	}
	return rates, nil
}

// GetForex returns one exchange rate by warehouse id.
func (s *BrowseService) GetForex(ctx context.Context, id int64) (*domain.Forex, error) {
	return s.rates.FindForexByID(ctx, id)
}

// ListValidOffers returns one page of valid offers.
func (s *BrowseService) ListValidOffers(ctx context.Context, page int) ([]domain.ValidOffer, error) {
	limit, offset := pageBounds(page)
	offers, err := s.offers.ListValidOffers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list valid offers: %w", err)
	}
	return offers, nil
}

// GetValidOffer returns one valid offer by warehouse id.
func (s *BrowseService) GetValidOffer(ctx context.Context, id int64) (*domain.ValidOffer, error) {
	return s.offers.FindValidOfferByID(ctx, id)
}

// ListInvalidOffers returns one page of invalid offers.
func (s *BrowseService) ListInvalidOffers(ctx context.Context, page int) ([]domain.InvalidOffer, error) {
	limit, offset := pageBounds(page)
	offers, err := s.offers.ListInvalidOffers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invalid offers: %w", err)
	}
	return offers, nil
}

// GetInvalidOffer returns one invalid offer by warehouse id.
func (s *BrowseService) GetInvalidOffer(ctx context.Context, id int64) (*domain.InvalidOffer, error) {
	return s.offers.FindInvalidOfferByID(ctx, id)
}

// MarkValidOfferInvalid updates the invalid flag of a valid offer. Origin
// fields and everything else stay immutable.
func (s *BrowseService) MarkValidOfferInvalid(ctx context.Context, id int64, invalid bool) error {
	return s.offers.SetValidOfferInvalid(ctx, id, invalid)
}

func pageBounds(page int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	return browsePageSize, (page - 1) * browsePageSize
}
