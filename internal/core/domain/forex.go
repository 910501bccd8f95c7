package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Forex is one foreign exchange rate, valid for a single date. Unique on
// (CurrencyFromID, CurrencyToID, DateValid).
type Forex struct {
	ID             int64           `json:"id"`
	CurrencyFromID int64           `json:"currencyFromId"`
	CurrencyToID   int64           `json:"currencyToId"`
	DateValid      time.Time       `json:"dateValid"`
	Rate           decimal.Decimal `json:"rate"`
	Origin
}

func (f Forex) String() string {
	return fmt.Sprintf("%d -> %d @ %s", f.CurrencyFromID, f.CurrencyToID, f.DateValid.Format("2006-01-02"))
}
