package mapping

import (
	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
	"github.com/hqdw/hq_warehouse_app/internal/models"
)

// ToDomainBatch converts a model Batch to a domain Batch
func ToDomainBatch(m models.Batch) domain.Batch {
	return domain.Batch{ID: m.ID, Processed: m.Processed}
}

func toDomainCheckoutMeta(m models.CheckoutFields) domain.CheckoutMeta {
	return domain.CheckoutMeta{
		Processed:     m.Processed,
		InError:       m.InError,
		FieldsInError: m.FieldsInError,
		Ignore:        m.Ignore,
	}
}

// ToDomainStagingCurrency converts a model StagingCurrency to a domain StagingCurrency
func ToDomainStagingCurrency(m models.StagingCurrency) domain.StagingCurrency {
	return domain.StagingCurrency{
		ID:           m.ID,
		BatchID:      m.BatchID,
		Code:         m.Code,
		Name:         m.Name,
		CheckoutMeta: toDomainCheckoutMeta(m.CheckoutFields),
	}
}

// ToDomainStagingForex converts a model StagingForex to a domain StagingForex
func ToDomainStagingForex(m models.StagingForex) domain.StagingForex {
	return domain.StagingForex{
		ID:                  m.ID,
		BatchID:             m.BatchID,
		PrimaryCurrencyID:   m.PrimaryCurrencyID,
		SecondaryCurrencyID: m.SecondaryCurrencyID,
		DateValid:           m.DateValid,
		Rate:                m.Rate,
		CheckoutMeta:        toDomainCheckoutMeta(m.CheckoutFields),
	}
}

// ToDomainStagingOffer converts a model StagingOffer to a domain StagingOffer
func ToDomainStagingOffer(m models.StagingOffer) domain.StagingOffer {
	return domain.StagingOffer{
		ID:                    m.ID,
		BatchID:               m.BatchID,
		HotelID:               m.HotelID,
		SellingPrice:          m.SellingPrice,
		CurrencyID:            m.CurrencyID,
		BreakfastIncludedFlag: m.BreakfastIncludedFlag,
		ValidOfferFlag:        m.ValidOfferFlag,
		CheckinDate:           m.CheckinDate,
		CheckoutDate:          m.CheckoutDate,
		OfferValidFrom:        m.OfferValidFrom,
		OfferValidTo:          m.OfferValidTo,
		CheckoutMeta:          toDomainCheckoutMeta(m.CheckoutFields),
	}
}
