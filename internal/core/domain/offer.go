package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Offer is a hotel price offer fact. ValidFrom/ValidTo are full timestamps in
// the warehouse time zone; the storage layer splits each into separate date
// and time columns. Offers land in either the valid or the invalid table,
// chosen once at checkout, and each table is unique on
// (HotelID, BreakfastIncluded, CheckinDate, CheckoutDate).
type Offer struct {
	ID                 int64           `json:"id"`
	HotelID            int64           `json:"hotelId"`
	PriceUSD           decimal.Decimal `json:"priceUsd"`
	OriginalPrice      decimal.Decimal `json:"originalPrice"`
	OriginalCurrencyID int64           `json:"originalCurrencyId"`
	BreakfastIncluded  bool            `json:"breakfastIncluded"`
	ValidFrom          time.Time       `json:"validFrom"`
	ValidTo            time.Time       `json:"validTo"`
	CheckinDate        time.Time       `json:"checkinDate"`
	CheckoutDate       time.Time       `json:"checkoutDate"`
	Origin
}

func (o Offer) String() string {
	return fmt.Sprintf("%d @ %s - %s",
		o.HotelID,
		o.ValidFrom.Format("200601021504"),
		o.ValidTo.Format("200601021504"),
	)
}

// Key returns the business key the offer tables are unique on.
func (o Offer) Key() OfferKey {
	return OfferKey{
		HotelID:           o.HotelID,
		BreakfastIncluded: o.BreakfastIncluded,
		CheckinDate:       o.CheckinDate,
		CheckoutDate:      o.CheckoutDate,
	}
}

// OfferKey identifies an offer within one destination table.
type OfferKey struct {
	HotelID           int64
	BreakfastIncluded bool
	CheckinDate       time.Time
	CheckoutDate      time.Time
}

// ValidOffer is an offer still applicable at checkout time. Invalid starts
// false and is only ever flipped by an explicit operator action.
type ValidOffer struct {
	Offer
	Invalid bool `json:"invalid"`
}

// InvalidOffer is an offer that was already expired when it was lifted from
// the staging area. Kept for statistical queries.
type InvalidOffer struct {
	Offer
}
