package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hqdw/hq_warehouse_app/internal/apperrors"
	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
	portsrepo "github.com/hqdw/hq_warehouse_app/internal/core/ports/repositories"
	"github.com/hqdw/hq_warehouse_app/internal/models"
	"github.com/hqdw/hq_warehouse_app/internal/utils/mapping"
)

// PgxOfferRepository implements the offer repository ports over the two offer
// tables. The destination table is chosen per call; the two tables do not
// share a uniqueness domain.
type PgxOfferRepository struct {
	BaseRepository
}

// newPgxOfferRepository creates a new repository for the offer tables.
func newPgxOfferRepository(pool *pgxpool.Pool) portsrepo.OfferRepositoryFacade {
	return &PgxOfferRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.OfferRepositoryFacade = (*PgxOfferRepository)(nil)

const offerSelectColumns = `id, hotel_id, price_usd, original_price, original_currency_id, breakfast_included,
		valid_from_date, valid_from_time, valid_to_date, valid_to_time, checkin_date, checkout_date,
		batch_id, origin_id, insert_date`

func offerTable(dest domain.Destination) (string, error) {
	switch dest {
	case domain.DestValidOffer:
		return "valid_offers", nil
	case domain.DestInvalidOffer:
		return "invalid_offers", nil
	default:
		return "", fmt.Errorf("destination %q is not an offer table", dest)
	}
}

// InsertOffer persists a new offer row into the given destination table. The
// invalid flag of valid_offers takes its default (false) at insertion.
func (r *PgxOfferRepository) InsertOffer(ctx context.Context, dest domain.Destination, offer domain.Offer) (*domain.Offer, error) {
	table, err := offerTable(dest)
	if err != nil {
		return nil, err
	}
	modelOffer := mapping.ToModelOffer(offer)

	query := `
		INSERT INTO ` + table + ` (hotel_id, price_usd, original_price, original_currency_id, breakfast_included,
			valid_from_date, valid_from_time, valid_to_date, valid_to_time, checkin_date, checkout_date,
			batch_id, origin_id, insert_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id;
	`
	err = r.Pool.QueryRow(ctx, query,
		modelOffer.HotelID,
		modelOffer.PriceUSD,
		modelOffer.OriginalPrice,
		modelOffer.OriginalCurrencyID,
		modelOffer.BreakfastIncluded,
		modelOffer.ValidFromDate,
		modelOffer.ValidFromTime,
		modelOffer.ValidToDate,
		modelOffer.ValidToTime,
		modelOffer.CheckinDate,
		modelOffer.CheckoutDate,
		modelOffer.BatchID,
		modelOffer.OriginID,
		modelOffer.InsertDate,
	).Scan(&modelOffer.ID)

	if err != nil {
		return nil, fmt.Errorf("insert offer for hotel %d into %s: %w", modelOffer.HotelID, table, classifyWriteError(err))
	}

	domainOffer := mapping.ToDomainOffer(modelOffer)
	return &domainOffer, nil
}

// FindOfferByKey retrieves an offer from the destination table by its
// business key.
func (r *PgxOfferRepository) FindOfferByKey(ctx context.Context, dest domain.Destination, key domain.OfferKey) (*domain.Offer, error) {
	table, err := offerTable(dest)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT ` + offerSelectColumns + `
		FROM ` + table + `
		WHERE hotel_id = $1 AND breakfast_included = $2 AND checkin_date = $3 AND checkout_date = $4;
	`
	modelOffer, err := r.scanOffer(ctx, query, key.HotelID, key.BreakfastIncluded, key.CheckinDate, key.CheckoutDate)
	if err != nil {
		return nil, err
	}

	domainOffer := mapping.ToDomainOffer(*modelOffer)
	return &domainOffer, nil
}

// FindValidOfferByID retrieves a valid offer by its warehouse id, including
// the invalid flag.
func (r *PgxOfferRepository) FindValidOfferByID(ctx context.Context, id int64) (*domain.ValidOffer, error) {
	query := `
		SELECT ` + offerSelectColumns + `, invalid
		FROM valid_offers
		WHERE id = $1;
	`
	var modelOffer models.ValidOffer
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		offerScanTargets(&modelOffer.Offer, &modelOffer.Invalid)...,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find valid offer %d: %w", id, err)
	}

	domainOffer := mapping.ToDomainValidOffer(modelOffer)
	return &domainOffer, nil
}

// FindInvalidOfferByID retrieves an invalid offer by its warehouse id.
func (r *PgxOfferRepository) FindInvalidOfferByID(ctx context.Context, id int64) (*domain.InvalidOffer, error) {
	query := `
		SELECT ` + offerSelectColumns + `
		FROM invalid_offers
		WHERE id = $1;
	`
	modelOffer, err := r.scanOffer(ctx, query, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find invalid offer %d: %w", id, err)
	}

	domainOffer := domain.InvalidOffer{Offer: mapping.ToDomainOffer(*modelOffer)}
	return &domainOffer, nil
}

// ListValidOffers retrieves a page of valid offers ordered by id.
func (r *PgxOfferRepository) ListValidOffers(ctx context.Context, limit, offset int) ([]domain.ValidOffer, error) {
	query := `
		SELECT ` + offerSelectColumns + `, invalid
		FROM valid_offers
		ORDER BY id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query valid offers: %w", err)
	}
	defer rows.Close()

	modelOffers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ValidOffer, error) {
		var offer models.ValidOffer
		err := row.Scan(offerScanTargets(&offer.Offer, &offer.Invalid)...)
		return offer, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.ValidOffer{}, nil
		}
		return nil, fmt.Errorf("scan valid offers: %w", err)
	}

	return mapping.ToDomainValidOfferSlice(modelOffers), nil
}

// ListInvalidOffers retrieves a page of invalid offers ordered by id.
func (r *PgxOfferRepository) ListInvalidOffers(ctx context.Context, limit, offset int) ([]domain.InvalidOffer, error) {
	query := `
		SELECT ` + offerSelectColumns + `
		FROM invalid_offers
		ORDER BY id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query invalid offers: %w", err)
	}
	defer rows.Close()

	modelOffers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Offer, error) {
		var offer models.Offer
		err := row.Scan(offerScanTargets(&offer, nil)...)
		return offer, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.InvalidOffer{}, nil
		}
		return nil, fmt.Errorf("scan invalid offers: %w", err)
	}

	return mapping.ToDomainInvalidOfferSlice(modelOffers), nil
}

// SetValidOfferInvalid updates the invalid flag of a valid offer.
func (r *PgxOfferRepository) SetValidOfferInvalid(ctx context.Context, id int64, invalid bool) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE valid_offers SET invalid = $1 WHERE id = $2;`, invalid, id)
	if err != nil {
		return fmt.Errorf("update valid offer %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOfferRepository) scanOffer(ctx context.Context, query string, args ...any) (*models.Offer, error) {
	var modelOffer models.Offer
	err := r.Pool.QueryRow(ctx, query, args...).Scan(
		offerScanTargets(&modelOffer, nil)...,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find offer: %w", err)
	}
	return &modelOffer, nil
}

// offerScanTargets returns scan destinations in offerSelectColumns order,
// optionally followed by the invalid flag.
func offerScanTargets(o *models.Offer, invalid *bool) []any {
	targets := []any{
		&o.ID,
		&o.HotelID,
		&o.PriceUSD,
		&o.OriginalPrice,
		&o.OriginalCurrencyID,
		&o.BreakfastIncluded,
		&o.ValidFromDate,
		&o.ValidFromTime,
		&o.ValidToDate,
		&o.ValidToTime,
		&o.CheckinDate,
		&o.CheckoutDate,
		&o.BatchID,
		&o.OriginID,
		&o.InsertDate,
	}
	if invalid != nil {
		targets = append(targets, invalid)
	}
	return targets
}
