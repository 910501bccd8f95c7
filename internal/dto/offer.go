package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
)

// OfferResponse defines the data shared by valid and invalid offers.
type OfferResponse struct {
	ID                 int64           `json:"id"`
	HotelID            int64           `json:"hotelId"`
	PriceUSD           decimal.Decimal `json:"priceUsd"`
	OriginalPrice      decimal.Decimal `json:"originalPrice"`
	OriginalCurrencyID int64           `json:"originalCurrencyId"`
	BreakfastIncluded  bool            `json:"breakfastIncluded"`
	ValidFrom          time.Time       `json:"validFrom"`
	ValidTo            time.Time       `json:"validTo"`
	CheckinDate        string          `json:"checkinDate"`
	CheckoutDate       string          `json:"checkoutDate"`
	BatchID            int64           `json:"batchId"`
	OriginID           int64           `json:"originId"`
	InsertDate         time.Time       `json:"insertDate"`
}

// ValidOfferResponse adds the operator-controlled invalid flag.
type ValidOfferResponse struct {
	OfferResponse
	Invalid bool `json:"invalid"`
}

// UpdateValidOfferRequest carries the only mutable field of a valid offer.
type UpdateValidOfferRequest struct {
	Invalid *bool `json:"invalid" binding:"required"`
}

func toOfferResponse(o *domain.Offer) OfferResponse {
	return OfferResponse{
		ID:                 o.ID,
		HotelID:            o.HotelID,
		PriceUSD:           o.PriceUSD,
		OriginalPrice:      o.OriginalPrice,
		OriginalCurrencyID: o.OriginalCurrencyID,
		BreakfastIncluded:  o.BreakfastIncluded,
		ValidFrom:          o.ValidFrom,
		ValidTo:            o.ValidTo,
		CheckinDate:        o.CheckinDate.Format("2006-01-02"),
		CheckoutDate:       o.CheckoutDate.Format("2006-01-02"),
		BatchID:            o.BatchID,
		OriginID:           o.OriginID,
		InsertDate:         o.InsertDate,
	}
}

// ToValidOfferResponse converts a domain.ValidOffer to ValidOfferResponse DTO
func ToValidOfferResponse(o *domain.ValidOffer) ValidOfferResponse {
	return ValidOfferResponse{
		OfferResponse: toOfferResponse(&o.Offer),
		Invalid:       o.Invalid,
	}
}

// ToInvalidOfferResponse converts a domain.InvalidOffer to OfferResponse DTO
func ToInvalidOfferResponse(o *domain.InvalidOffer) OfferResponse {
	return toOfferResponse(&o.Offer)
}

// ToListValidOfferResponse converts a slice of domain.ValidOffer to DTOs
func ToListValidOfferResponse(offers []domain.ValidOffer) []ValidOfferResponse {
	res := make([]ValidOfferResponse, len(offers))
	for i, o := range offers {
		res[i] = ToValidOfferResponse(&o)
	}
	return res
}

// ToListInvalidOfferResponse converts a slice of domain.InvalidOffer to DTOs
func ToListInvalidOfferResponse(offers []domain.InvalidOffer) []OfferResponse {
	res := make([]OfferResponse, len(offers))
	for i, o := range offers {
		res[i] = ToInvalidOfferResponse(&o)
	}
	return res
}
