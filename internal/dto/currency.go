package dto

import (
	"time"

	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
)

// CurrencyResponse defines the data returned for a warehouse currency.
type CurrencyResponse struct {
	ID         int64     `json:"id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	BatchID    int64     `json:"batchId"`
	OriginID   int64     `json:"originId"`
	InsertDate time.Time `json:"insertDate"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:         curr.ID,
		Code:       curr.Code,
		Name:       curr.Name,
		BatchID:    curr.BatchID,
		OriginID:   curr.OriginID,
		InsertDate: curr.InsertDate,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
