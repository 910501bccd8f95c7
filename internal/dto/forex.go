package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
)

// ForexResponse defines the data returned for an exchange rate.
type ForexResponse struct {
	ID             int64           `json:"id"`
	CurrencyFromID int64           `json:"currencyFromId"`
	CurrencyToID   int64           `json:"currencyToId"`
	DateValid      string          `json:"dateValid"`
	Rate           decimal.Decimal `json:"rate"`
	BatchID        int64           `json:"batchId"`
	OriginID       int64           `json:"originId"`
	InsertDate     time.Time       `json:"insertDate"`
}

// ToForexResponse converts a domain.Forex to ForexResponse DTO
func ToForexResponse(fx *domain.Forex) ForexResponse {
	return ForexResponse{
		ID:             fx.ID,
		CurrencyFromID: fx.CurrencyFromID,
		CurrencyToID:   fx.CurrencyToID,
		DateValid:      fx.DateValid.Format("2006-01-02"),
		Rate:           fx.Rate,
		BatchID:        fx.BatchID,
		OriginID:       fx.OriginID,
		InsertDate:     fx.InsertDate,
	}
}

// ToListForexResponse converts a slice of domain.Forex to a slice of ForexResponse DTOs
func ToListForexResponse(rates []domain.Forex) []ForexResponse {
	res := make([]ForexResponse, len(rates))
	for i, fx := range rates {
		res[i] = ToForexResponse(&fx)
	}
	return res
}
