package services

import (
	"context"
	"errors"
	"slices"

	"github.com/hqdw/hq_warehouse_app/internal/apperrors"
	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
	portsrepo "github.com/hqdw/hq_warehouse_app/internal/core/ports/repositories"
)

// WriteOutcome reports how a warehouse write ended.
type WriteOutcome int

const (
	// OutcomeInserted means a new row was created.
	OutcomeInserted WriteOutcome = iota
	// OutcomeDuplicate means an equivalent row already existed and was
	// returned instead. A second submission of the same logical fact is a
	// no-op success, not an error.
	OutcomeDuplicate
	// OutcomeRejected means the store refused the row for a reason dedup
	// cannot resolve.
	OutcomeRejected
)

// uniqueConstraints declares the unique column sets of each destination table,
// in table declaration order. The dedup lookup walks this list instead of
// discovering constraints from the store.
var uniqueConstraints = map[domain.Destination][][]string{
	domain.DestCurrency:     {{"code"}},
	domain.DestForex:        {{"currency_from_id", "currency_to_id", "date_valid"}},
	domain.DestValidOffer:   {{"hotel_id", "breakfast_included", "checkin_date", "checkout_date"}},
	domain.DestInvalidOffer: {{"hotel_id", "breakfast_included", "checkin_date", "checkout_date"}},
}

// WarehouseWriter persists warehouse parameter sets. On a uniqueness conflict
// it retries as a lookup and returns the existing row; on any other integrity
// or numeric-domain failure it reports the row as unwritable. The writer never
// touches the dimension cache; that is the caller's job.
type WarehouseWriter struct {
	currencies portsrepo.CurrencyRepositoryFacade
	rates      portsrepo.ForexRepositoryFacade
	offers     portsrepo.OfferRepositoryFacade
}

// NewWarehouseWriter creates a writer over the warehouse repositories.
func NewWarehouseWriter(currencies portsrepo.CurrencyRepositoryFacade, rates portsrepo.ForexRepositoryFacade, offers portsrepo.OfferRepositoryFacade) *WarehouseWriter {
	return &WarehouseWriter{currencies: currencies, rates: rates, offers: offers}
}

// WriteCurrency inserts a currency or resolves it to the existing row.
func (w *WarehouseWriter) WriteCurrency(ctx context.Context, params domain.Currency) (*domain.Currency, WriteOutcome, error) {
	written, err := w.currencies.InsertCurrency(ctx, params)
	if err == nil {
		return written, OutcomeInserted, nil
	}

	switch {
	case errors.Is(err, apperrors.ErrDuplicate):
		for _, cols := range uniqueConstraints[domain.DestCurrency] {
			if !hasColumns(cols, "code") {
				continue
			}
			existing, lookupErr := w.currencies.FindCurrencyByCode(ctx, params.Code)
			if lookupErr == nil {
				return existing, OutcomeDuplicate, nil
			}
			if !errors.Is(lookupErr, apperrors.ErrNotFound) {
				return nil, OutcomeRejected, lookupErr
			}
		}
		return nil, OutcomeRejected, nil
	case errors.Is(err, apperrors.ErrRejected):
		return nil, OutcomeRejected, nil
	default:
		return nil, OutcomeRejected, err
	}
}

// WriteForex inserts a rate or resolves it to the existing row.
func (w *WarehouseWriter) WriteForex(ctx context.Context, params domain.Forex) (*domain.Forex, WriteOutcome, error) {
	written, err := w.rates.InsertForex(ctx, params)
	if err == nil {
		return written, OutcomeInserted, nil
	}

	switch {
	case errors.Is(err, apperrors.ErrDuplicate):
		for _, cols := range uniqueConstraints[domain.DestForex] {
			if !hasColumns(cols, "currency_from_id", "currency_to_id", "date_valid") {
				continue
			}
			existing, lookupErr := w.rates.FindForexByPairAndDate(ctx, params.CurrencyFromID, params.CurrencyToID, params.DateValid)
			if lookupErr == nil {
				return existing, OutcomeDuplicate, nil
			}
			if !errors.Is(lookupErr, apperrors.ErrNotFound) {
				return nil, OutcomeRejected, lookupErr
			}
		}
		return nil, OutcomeRejected, nil
	case errors.Is(err, apperrors.ErrRejected):
		return nil, OutcomeRejected, nil
	default:
		return nil, OutcomeRejected, err
	}
}

// WriteOffer inserts an offer into the given destination table or resolves it
// to the existing row there. The two offer tables do not share a uniqueness
// domain, so dedup only consults the destination being written.
func (w *WarehouseWriter) WriteOffer(ctx context.Context, dest domain.Destination, params domain.Offer) (*domain.Offer, WriteOutcome, error) {
	written, err := w.offers.InsertOffer(ctx, dest, params)
	if err == nil {
		return written, OutcomeInserted, nil
	}

	switch {
	case errors.Is(err, apperrors.ErrDuplicate):
		for _, cols := range uniqueConstraints[dest] {
			if !hasColumns(cols, "hotel_id", "breakfast_included", "checkin_date", "checkout_date") {
				continue
			}
			existing, lookupErr := w.offers.FindOfferByKey(ctx, dest, params.Key())
			if lookupErr == nil {
				return existing, OutcomeDuplicate, nil
			}
			if !errors.Is(lookupErr, apperrors.ErrNotFound) {
				return nil, OutcomeRejected, lookupErr
			}
		}
		return nil, OutcomeRejected, nil
	case errors.Is(err, apperrors.ErrRejected):
		return nil, OutcomeRejected, nil
	default:
		return nil, OutcomeRejected, err
	}
}

// hasColumns reports whether the constraint column set is fully covered by the
// columns extractable from the parameter set at hand.
func hasColumns(constraint []string, available ...string) bool {
	for _, col := range constraint {
		if !slices.Contains(available, col) {
			return false
		}
	}
	return true
}
