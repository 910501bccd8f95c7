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

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for the currencies table.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

const currencySelectColumns = `id, code, name, batch_id, origin_id, insert_date`

// InsertCurrency persists a new currency row. Uniqueness conflicts surface as
// apperrors.ErrDuplicate, other integrity failures as apperrors.ErrRejected.
func (r *PgxCurrencyRepository) InsertCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (code, name, batch_id, origin_id, insert_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelCurr.Code,
		modelCurr.Name,
		modelCurr.BatchID,
		modelCurr.OriginID,
		modelCurr.InsertDate,
	).Scan(&modelCurr.ID)

	if err != nil {
		return nil, fmt.Errorf("insert currency %s: %w", modelCurr.Code, classifyWriteError(err))
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// FindCurrencyByID retrieves a currency by its warehouse id.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	query := `SELECT ` + currencySelectColumns + ` FROM currencies WHERE id = $1;`
	return r.findCurrency(ctx, query, id)
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `SELECT ` + currencySelectColumns + ` FROM currencies WHERE code = $1;`
	return r.findCurrency(ctx, query, code)
}

func (r *PgxCurrencyRepository) findCurrency(ctx context.Context, query string, arg any) (*domain.Currency, error) {
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelCurr.ID,
		&modelCurr.Code,
		&modelCurr.Name,
		&modelCurr.BatchID,
		&modelCurr.OriginID,
		&modelCurr.InsertDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find currency: %w", err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves a page of currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, limit, offset int) ([]domain.Currency, error) {
	query := `
		SELECT ` + currencySelectColumns + `
		FROM currencies
		ORDER BY code
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.ID,
			&currency.Code,
			&currency.Name,
			&currency.BatchID,
			&currency.OriginID,
			&currency.InsertDate,
		)
		return currency, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Currency{}, nil
		}
		return nil, fmt.Errorf("scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
