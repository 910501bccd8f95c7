package mapping

import (
	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
	"github.com/hqdw/hq_warehouse_app/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		ID:   d.ID,
		Code: d.Code,
		Name: d.Name,
		OriginFields: models.OriginFields{
			BatchID:    d.BatchID,
			OriginID:   d.OriginID,
			InsertDate: d.InsertDate,
		},
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		ID:   m.ID,
		Code: m.Code,
		Name: m.Name,
		Origin: domain.Origin{
			BatchID:    m.BatchID,
			OriginID:   m.OriginID,
			InsertDate: m.InsertDate,
		},
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
