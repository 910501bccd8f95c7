package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hqdw/hq_warehouse_app/internal/apperrors"
	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
	portsrepo "github.com/hqdw/hq_warehouse_app/internal/core/ports/repositories"
	"github.com/hqdw/hq_warehouse_app/internal/models"
	"github.com/hqdw/hq_warehouse_app/internal/utils/mapping"
)

// PgxForexRepository implements the forex repository ports using pgxpool.
type PgxForexRepository struct {
	BaseRepository
}

// newPgxForexRepository creates a new repository for the forex table.
func newPgxForexRepository(pool *pgxpool.Pool) portsrepo.ForexRepositoryFacade {
	return &PgxForexRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ForexRepositoryFacade = (*PgxForexRepository)(nil)

const forexSelectColumns = `id, currency_from_id, currency_to_id, date_valid, rate, batch_id, origin_id, insert_date`

// InsertForex persists a new exchange rate row.
func (r *PgxForexRepository) InsertForex(ctx context.Context, forex domain.Forex) (*domain.Forex, error) {
	modelRate := mapping.ToModelForex(forex)

	query := `
		INSERT INTO forex (currency_from_id, currency_to_id, date_valid, rate, batch_id, origin_id, insert_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelRate.CurrencyFromID,
		modelRate.CurrencyToID,
		modelRate.DateValid,
		modelRate.Rate,
		modelRate.BatchID,
		modelRate.OriginID,
		modelRate.InsertDate,
	).Scan(&modelRate.ID)

	if err != nil {
		return nil, fmt.Errorf("insert forex %d->%d: %w", modelRate.CurrencyFromID, modelRate.CurrencyToID, classifyWriteError(err))
	}

	domainRate := mapping.ToDomainForex(modelRate)
	return &domainRate, nil
}

// FindForexByID retrieves a rate by its warehouse id.
func (r *PgxForexRepository) FindForexByID(ctx context.Context, id int64) (*domain.Forex, error) {
	query := `SELECT ` + forexSelectColumns + ` FROM forex WHERE id = $1;`
	return r.findForex(ctx, query, id)
}

// FindForexByPairAndDate retrieves the rate for an exact (from, to, date) triple.
func (r *PgxForexRepository) FindForexByPairAndDate(ctx context.Context, fromID, toID int64, date time.Time) (*domain.Forex, error) {
	query := `
		SELECT ` + forexSelectColumns + `
		FROM forex
		WHERE currency_from_id = $1 AND currency_to_id = $2 AND date_valid = $3;
	`
	return r.findForex(ctx, query, fromID, toID, date)
}

// FindLatestForexAtOrBefore retrieves the most recent rate for the pair with
// date_valid at or before the given date.
func (r *PgxForexRepository) FindLatestForexAtOrBefore(ctx context.Context, fromID, toID int64, date time.Time) (*domain.Forex, error) {
	query := `
		SELECT ` + forexSelectColumns + `
		FROM forex
		WHERE currency_from_id = $1 AND currency_to_id = $2 AND date_valid <= $3
		ORDER BY date_valid DESC
		LIMIT 1;
	`
	return r.findForex(ctx, query, fromID, toID, date)
}

func (r *PgxForexRepository) findForex(ctx context.Context, query string, args ...any) (*domain.Forex, error) {
	var modelRate models.Forex
	err := r.Pool.QueryRow(ctx, query, args...).Scan(
		&modelRate.ID,
		&modelRate.CurrencyFromID,
		&modelRate.CurrencyToID,
		&modelRate.DateValid,
		&modelRate.Rate,
		&modelRate.BatchID,
		&modelRate.OriginID,
		&modelRate.InsertDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find forex: %w", err)
	}

	domainRate := mapping.ToDomainForex(modelRate)
	return &domainRate, nil
}

// ListForex retrieves a page of rates ordered by pair and date descending.
func (r *PgxForexRepository) ListForex(ctx context.Context, limit, offset int) ([]domain.Forex, error) {
	query := `
		SELECT ` + forexSelectColumns + `
		FROM forex
		ORDER BY currency_from_id, currency_to_id, date_valid DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query forex: %w", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Forex, error) {
		var rate models.Forex
		err := row.Scan(
			&rate.ID,
			&rate.CurrencyFromID,
			&rate.CurrencyToID,
			&rate.DateValid,
			&rate.Rate,
			&rate.BatchID,
			&rate.OriginID,
			&rate.InsertDate,
		)
		return rate, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Forex{}, nil
		}
		return nil, fmt.Errorf("scan forex: %w", err)
	}

	return mapping.ToDomainForexSlice(modelRates), nil
}
