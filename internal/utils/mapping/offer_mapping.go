package mapping

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
	"github.com/hqdw/hq_warehouse_app/internal/models"
)

// ToModelOffer converts a domain Offer to a model Offer, splitting the
// validity timestamps into separate date and time columns.
func ToModelOffer(d domain.Offer) models.Offer {
	fromDate, fromTime := splitTimestamp(d.ValidFrom)
	toDate, toTime := splitTimestamp(d.ValidTo)
	return models.Offer{
		ID:                 d.ID,
		HotelID:            d.HotelID,
		PriceUSD:           d.PriceUSD,
		OriginalPrice:      d.OriginalPrice,
		OriginalCurrencyID: d.OriginalCurrencyID,
		BreakfastIncluded:  d.BreakfastIncluded,
		ValidFromDate:      fromDate,
		ValidFromTime:      fromTime,
		ValidToDate:        toDate,
		ValidToTime:        toTime,
		CheckinDate:        d.CheckinDate,
		CheckoutDate:       d.CheckoutDate,
		OriginFields: models.OriginFields{
			BatchID:    d.BatchID,
			OriginID:   d.OriginID,
			InsertDate: d.InsertDate,
		},
	}
}

// ToDomainOffer converts a model Offer to a domain Offer, recombining the
// split date and time columns.
func ToDomainOffer(m models.Offer) domain.Offer {
	return domain.Offer{
		ID:                 m.ID,
		HotelID:            m.HotelID,
		PriceUSD:           m.PriceUSD,
		OriginalPrice:      m.OriginalPrice,
		OriginalCurrencyID: m.OriginalCurrencyID,
		BreakfastIncluded:  m.BreakfastIncluded,
		ValidFrom:          joinTimestamp(m.ValidFromDate, m.ValidFromTime),
		ValidTo:            joinTimestamp(m.ValidToDate, m.ValidToTime),
		CheckinDate:        m.CheckinDate,
		CheckoutDate:       m.CheckoutDate,
		Origin: domain.Origin{
			BatchID:    m.BatchID,
			OriginID:   m.OriginID,
			InsertDate: m.InsertDate,
		},
	}
}

// ToDomainValidOffer converts a model ValidOffer to a domain ValidOffer
func ToDomainValidOffer(m models.ValidOffer) domain.ValidOffer {
	return domain.ValidOffer{
		Offer:   ToDomainOffer(m.Offer),
		Invalid: m.Invalid,
	}
}

// ToDomainValidOfferSlice converts a slice of model ValidOffers
func ToDomainValidOfferSlice(ms []models.ValidOffer) []domain.ValidOffer {
	ds := make([]domain.ValidOffer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainValidOffer(m)
	}
	return ds
}

// ToDomainInvalidOfferSlice converts a slice of model Offers read from the
// invalid_offers table
func ToDomainInvalidOfferSlice(ms []models.Offer) []domain.InvalidOffer {
	ds := make([]domain.InvalidOffer, len(ms))
	for i, m := range ms {
		ds[i] = domain.InvalidOffer{Offer: ToDomainOffer(m)}
	}
	return ds
}

func splitTimestamp(t time.Time) (time.Time, pgtype.Time) {
	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	micros := int64(t.Hour())*3600_000_000 +
		int64(t.Minute())*60_000_000 +
		int64(t.Second())*1_000_000
	return date, pgtype.Time{Microseconds: micros, Valid: true}
}

func joinTimestamp(date time.Time, tod pgtype.Time) time.Time {
	return date.Add(time.Duration(tod.Microseconds) * time.Microsecond)
}
