package services

import (
	"context"
	"errors"
	"time"

	"github.com/hqdw/hq_warehouse_app/internal/apperrors"
	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
	portsrepo "github.com/hqdw/hq_warehouse_app/internal/core/ports/repositories"
)

// ForexResolver finds the best available exchange rate for a currency pair and
// date: cache first, then an exact store lookup, then the most recent rate at
// or before the requested date. Applying the latest known rate when none
// exists for the requested date is a documented approximation.
type ForexResolver struct {
	cache *DimensionCache
	rates portsrepo.ForexReader
}

// NewForexResolver creates a resolver over the given cache and store.
func NewForexResolver(cache *DimensionCache, rates portsrepo.ForexReader) *ForexResolver {
	return &ForexResolver{cache: cache, rates: rates}
}

// Resolve returns the rate for (fromID, toID, date), or apperrors.ErrNotFound
// when neither an exact nor a fallback rate exists. Whatever is found is
// cached under the requested triple, not under the date it was found at.
func (r *ForexResolver) Resolve(ctx context.Context, fromID, toID int64, date time.Time) (*domain.Forex, error) {
	if f, ok := r.cache.Forex(fromID, toID, date); ok {
		return &f, nil
	}

	f, err := r.rates.FindForexByPairAndDate(ctx, fromID, toID, date)
	if errors.Is(err, apperrors.ErrNotFound) {
		f, err = r.rates.FindLatestForexAtOrBefore(ctx, fromID, toID, date)
	}
	if err != nil {
		return nil, err
	}

	r.cache.PutForexFor(fromID, toID, date, *f)
	return f, nil
}
