package models

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Offer represents a row of either offer fact table. The validity window is
// stored split into DATE and TIME columns; a date is half the size of a
// timestamp and the date part carries the indexes.
type Offer struct {
	ID                 int64           `json:"id"` // Primary key
	HotelID            int64           `json:"hotelId"`
	PriceUSD           decimal.Decimal `json:"priceUsd"`
	OriginalPrice      decimal.Decimal `json:"originalPrice"`
	OriginalCurrencyID int64           `json:"originalCurrencyId"` // FK -> currencies.id
	BreakfastIncluded  bool            `json:"breakfastIncluded"`
	ValidFromDate      time.Time       `json:"validFromDate"` // DATE column
	ValidFromTime      pgtype.Time     `json:"validFromTime"` // TIME column
	ValidToDate        time.Time       `json:"validToDate"`   // DATE column
	ValidToTime        pgtype.Time     `json:"validToTime"`   // TIME column
	CheckinDate        time.Time       `json:"checkinDate"`
	CheckoutDate       time.Time       `json:"checkoutDate"`
	OriginFields
}

// ValidOffer adds the operator-maintained invalid flag present only on the
// valid_offers table.
type ValidOffer struct {
	Offer
	Invalid bool `json:"invalid"`
}
