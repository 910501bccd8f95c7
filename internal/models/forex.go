package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Forex represents a row of the forex fact table.
// Rate is NUMERIC(20,10) in the store; decimal keeps it exact.
type Forex struct {
	ID             int64           `json:"id"`             // Primary key
	CurrencyFromID int64           `json:"currencyFromId"` // FK -> currencies.id
	CurrencyToID   int64           `json:"currencyToId"`   // FK -> currencies.id
	DateValid      time.Time       `json:"dateValid"`      // DATE column
	Rate           decimal.Decimal `json:"rate"`
	OriginFields
}
