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

// PgxStagingRepository implements the staging repository ports using pgxpool.
type PgxStagingRepository struct {
	BaseRepository
}

// newPgxStagingRepository creates a new repository for the staging tables.
func newPgxStagingRepository(pool *pgxpool.Pool) portsrepo.StagingRepositoryFacade {
	return &PgxStagingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.StagingRepositoryFacade = (*PgxStagingRepository)(nil)

// stagingTables maps entity types onto their staging table names. Status
// updates address tables through this map only.
var stagingTables = map[domain.EntityType]string{
	domain.EntityCurrency: "staging_currencies",
	domain.EntityForex:    "staging_forex",
	domain.EntityOffer:    "staging_offers",
}

const stagingStatusColumns = `processed, in_error, fields_in_error, ignore`

// ListStagingCurrenciesByBatch retrieves all staging currency records of a batch.
func (r *PgxStagingRepository) ListStagingCurrenciesByBatch(ctx context.Context, batchID int64) ([]domain.StagingCurrency, error) {
	return r.listStagingCurrencies(ctx, `WHERE batch_id = $1`, batchID)
}

// ListStagingCurrenciesInError retrieves staging currency records flagged
// in_error and not ignored, across all batches.
func (r *PgxStagingRepository) ListStagingCurrenciesInError(ctx context.Context) ([]domain.StagingCurrency, error) {
	return r.listStagingCurrencies(ctx, `WHERE in_error AND NOT ignore`)
}

func (r *PgxStagingRepository) listStagingCurrencies(ctx context.Context, filter string, args ...any) ([]domain.StagingCurrency, error) {
	query := `
		SELECT id, batch_id, code, name, ` + stagingStatusColumns + `
		FROM staging_currencies ` + filter + `
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query staging currencies: %w", err)
	}
	defer rows.Close()

	modelRecs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.StagingCurrency, error) {
		var rec models.StagingCurrency
		err := row.Scan(
			&rec.ID,
			&rec.BatchID,
			&rec.Code,
			&rec.Name,
			&rec.Processed,
			&rec.InError,
			&rec.FieldsInError,
			&rec.Ignore,
		)
		return rec, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.StagingCurrency{}, nil
		}
		return nil, fmt.Errorf("scan staging currencies: %w", err)
	}

	recs := make([]domain.StagingCurrency, len(modelRecs))
	for i, m := range modelRecs {
		recs[i] = mapping.ToDomainStagingCurrency(m)
	}
	return recs, nil
}

// ListStagingForexByBatch retrieves all staging forex records of a batch.
func (r *PgxStagingRepository) ListStagingForexByBatch(ctx context.Context, batchID int64) ([]domain.StagingForex, error) {
	return r.listStagingForex(ctx, `WHERE batch_id = $1`, batchID)
}

// ListStagingForexInError retrieves staging forex records flagged in_error
// and not ignored, across all batches.
func (r *PgxStagingRepository) ListStagingForexInError(ctx context.Context) ([]domain.StagingForex, error) {
	return r.listStagingForex(ctx, `WHERE in_error AND NOT ignore`)
}

func (r *PgxStagingRepository) listStagingForex(ctx context.Context, filter string, args ...any) ([]domain.StagingForex, error) {
	query := `
		SELECT id, batch_id, primary_currency_id, secondary_currency_id, date_valid, rate, ` + stagingStatusColumns + `
		FROM staging_forex ` + filter + `
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query staging forex: %w", err)
	}
	defer rows.Close()

	modelRecs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.StagingForex, error) {
		var rec models.StagingForex
		err := row.Scan(
			&rec.ID,
			&rec.BatchID,
			&rec.PrimaryCurrencyID,
			&rec.SecondaryCurrencyID,
			&rec.DateValid,
			&rec.Rate,
			&rec.Processed,
			&rec.InError,
			&rec.FieldsInError,
			&rec.Ignore,
		)
		return rec, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.StagingForex{}, nil
		}
		return nil, fmt.Errorf("scan staging forex: %w", err)
	}

	recs := make([]domain.StagingForex, len(modelRecs))
	for i, m := range modelRecs {
		recs[i] = mapping.ToDomainStagingForex(m)
	}
	return recs, nil
}

// ListStagingOffersByBatch retrieves all staging offer records of a batch.
func (r *PgxStagingRepository) ListStagingOffersByBatch(ctx context.Context, batchID int64) ([]domain.StagingOffer, error) {
	return r.listStagingOffers(ctx, `WHERE batch_id = $1`, batchID)
}

// ListStagingOffersInError retrieves staging offer records flagged in_error
// and not ignored, across all batches.
func (r *PgxStagingRepository) ListStagingOffersInError(ctx context.Context) ([]domain.StagingOffer, error) {
	return r.listStagingOffers(ctx, `WHERE in_error AND NOT ignore`)
}

func (r *PgxStagingRepository) listStagingOffers(ctx context.Context, filter string, args ...any) ([]domain.StagingOffer, error) {
	query := `
		SELECT id, batch_id, hotel_id, selling_price, currency_id, breakfast_included_flag, valid_offer_flag,
			checkin_date, checkout_date, offer_valid_from, offer_valid_to, ` + stagingStatusColumns + `
		FROM staging_offers ` + filter + `
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query staging offers: %w", err)
	}
	defer rows.Close()

	modelRecs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.StagingOffer, error) {
		var rec models.StagingOffer
		err := row.Scan(
			&rec.ID,
			&rec.BatchID,
			&rec.HotelID,
			&rec.SellingPrice,
			&rec.CurrencyID,
			&rec.BreakfastIncludedFlag,
			&rec.ValidOfferFlag,
			&rec.CheckinDate,
			&rec.CheckoutDate,
			&rec.OfferValidFrom,
			&rec.OfferValidTo,
			&rec.Processed,
			&rec.InError,
			&rec.FieldsInError,
			&rec.Ignore,
		)
		return rec, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.StagingOffer{}, nil
		}
		return nil, fmt.Errorf("scan staging offers: %w", err)
	}

	recs := make([]domain.StagingOffer, len(modelRecs))
	for i, m := range modelRecs {
		recs[i] = mapping.ToDomainStagingOffer(m)
	}
	return recs, nil
}

// UpdateStagingStatus stamps the checkout outcome onto one staging record.
func (r *PgxStagingRepository) UpdateStagingStatus(ctx context.Context, entity domain.EntityType, id int64, status domain.CheckoutStatus) error {
	table, ok := stagingTables[entity]
	if !ok {
		return fmt.Errorf("unknown entity type %q", entity)
	}

	query := `UPDATE ` + table + ` SET processed = $1, in_error = $2, fields_in_error = $3 WHERE id = $4;`
	tag, err := r.Pool.Exec(ctx, query, status.Processed, status.InError, status.FieldsInError, id)
	if err != nil {
		return fmt.Errorf("update %s record %d: %w", table, id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// PgxBatchRepository implements the batch repository port using pgxpool.
type PgxBatchRepository struct {
	BaseRepository
}

// newPgxBatchRepository creates a new repository for the batches table.
func newPgxBatchRepository(pool *pgxpool.Pool) portsrepo.BatchRepositoryFacade {
	return &PgxBatchRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BatchRepositoryFacade = (*PgxBatchRepository)(nil)

// FindBatchByID retrieves a batch by id.
func (r *PgxBatchRepository) FindBatchByID(ctx context.Context, id int64) (*domain.Batch, error) {
	var modelBatch models.Batch
	err := r.Pool.QueryRow(ctx, `SELECT id, processed FROM batches WHERE id = $1;`, id).Scan(
		&modelBatch.ID,
		&modelBatch.Processed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find batch %d: %w", id, err)
	}

	domainBatch := mapping.ToDomainBatch(modelBatch)
	return &domainBatch, nil
}

// MarkBatchProcessed sets the processed flag of a batch.
func (r *PgxBatchRepository) MarkBatchProcessed(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE batches SET processed = TRUE WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("mark batch %d processed: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
