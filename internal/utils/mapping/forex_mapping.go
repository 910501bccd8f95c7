package mapping

import (
	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
	"github.com/hqdw/hq_warehouse_app/internal/models"
)

// ToModelForex converts a domain Forex to a model Forex
func ToModelForex(d domain.Forex) models.Forex {
	return models.Forex{
		ID:             d.ID,
		CurrencyFromID: d.CurrencyFromID,
		CurrencyToID:   d.CurrencyToID,
		DateValid:      d.DateValid,
		Rate:           d.Rate,
		OriginFields: models.OriginFields{
			BatchID:    d.BatchID,
			OriginID:   d.OriginID,
			InsertDate: d.InsertDate,
		},
	}
}

// ToDomainForex converts a model Forex to a domain Forex
func ToDomainForex(m models.Forex) domain.Forex {
	return domain.Forex{
		ID:             m.ID,
		CurrencyFromID: m.CurrencyFromID,
		CurrencyToID:   m.CurrencyToID,
		DateValid:      m.DateValid,
		Rate:           m.Rate,
		Origin: domain.Origin{
			BatchID:    m.BatchID,
			OriginID:   m.OriginID,
			InsertDate: m.InsertDate,
		},
	}
}

// ToDomainForexSlice converts a slice of model Forex to a slice of domain Forex
func ToDomainForexSlice(ms []models.Forex) []domain.Forex {
	ds := make([]domain.Forex, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainForex(m)
	}
	return ds
}
