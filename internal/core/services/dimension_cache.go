package services

import (
	"sync"
	"time"

	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
)

type forexKey struct {
	fromID int64
	toID   int64
	date   string // YYYY-MM-DD
}

// DimensionCache is an append-only, in-memory map of warehouse dimensions,
// constructed once per checkout run and passed into every validator and
// resolver. It holds no store handle: callers populate it after a successful
// store read or insert.
//
// There is no eviction and no size bound. That is a deliberate trade-off:
// dimension cardinality is bounded (hundreds of currencies, thousands of forex
// pairs per run) and entries stay valid for the lifetime of the run.
type DimensionCache struct {
	mu         sync.RWMutex
	currencies map[int64]domain.Currency
	forex      map[forexKey]domain.Forex
	base       *domain.Currency
	baseCode   string
}

// NewDimensionCache creates an empty cache. baseCode is the code of the
// conversion base currency, normally USD.
func NewDimensionCache(baseCode string) *DimensionCache {
	return &DimensionCache{
		currencies: make(map[int64]domain.Currency),
		forex:      make(map[forexKey]domain.Forex),
		baseCode:   baseCode,
	}
}

// Currency returns the cached currency for a warehouse id.
func (c *DimensionCache) Currency(id int64) (domain.Currency, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cur, ok := c.currencies[id]
	return cur, ok
}

// PutCurrency stores a currency. The first currency whose code matches the
// base code also becomes the conversion base; later inserts never replace it.
func (c *DimensionCache) PutCurrency(cur domain.Currency) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currencies[cur.ID] = cur
	if c.base == nil && cur.Code == c.baseCode {
		base := cur
		c.base = &base
	}
}

// BaseCurrency returns the conversion base currency, if one has been seen.
func (c *DimensionCache) BaseCurrency() (domain.Currency, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.base == nil {
		return domain.Currency{}, false
	}
	return *c.base, true
}

// Forex returns the cached rate for a (from, to, date) triple.
func (c *DimensionCache) Forex(fromID, toID int64, date time.Time) (domain.Forex, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.forex[forexKey{fromID: fromID, toID: toID, date: dateKey(date)}]
	return f, ok
}

// PutForex stores a rate under its own (from, to, date_valid) triple.
func (c *DimensionCache) PutForex(f domain.Forex) {
	c.PutForexFor(f.CurrencyFromID, f.CurrencyToID, f.DateValid, f)
}

// PutForexFor stores a rate under an explicit triple. The resolver uses this
// to cache a fallback rate under the date it was requested for rather than the
// date it was found at, so repeated lookups for the same request stay O(1).
func (c *DimensionCache) PutForexFor(fromID, toID int64, date time.Time, f domain.Forex) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.forex[forexKey{fromID: fromID, toID: toID, date: dateKey(date)}] = f
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
