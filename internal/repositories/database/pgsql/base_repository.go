package pgsql

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hqdw/hq_warehouse_app/internal/apperrors"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// classifyWriteError maps Postgres error codes onto the write protocol's
// sentinels: a unique violation becomes ErrDuplicate, any other integrity
// violation (class 23) or data/numeric-domain failure (class 22) becomes
// ErrRejected. Everything else passes through unchanged.
func classifyWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch {
	case pgErr.Code == "23505": // unique_violation
		return apperrors.ErrDuplicate
	case strings.HasPrefix(pgErr.Code, "23"): // other integrity violations
		return apperrors.ErrRejected
	case strings.HasPrefix(pgErr.Code, "22"): // data exception, e.g. numeric out of range
		return apperrors.ErrRejected
	}
	return err
}
