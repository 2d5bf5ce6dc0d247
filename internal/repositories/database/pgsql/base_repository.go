package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/cashflow_dashboard/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// mapWriteError translates constraint violations into application errors.
// Anything else is wrapped as an internal error mentioning the operation.
func mapWriteError(err error, op string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewConflictError(fmt.Sprintf("%s: a record with the same values already exists", op))
		case pgForeignKeyViolation:
			return apperrors.NewAppError(http.StatusBadRequest,
				fmt.Sprintf("%s: referenced record does not exist or is still in use", op), apperrors.ErrValidation)
		case pgCheckViolation:
			return apperrors.NewAppError(http.StatusBadRequest,
				fmt.Sprintf("%s: value violates constraint %s", op, pgErr.ConstraintName), apperrors.ErrValidation)
		}
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// mapReadError turns pgx.ErrNoRows into apperrors.ErrNotFound.
func mapReadError(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// execOne runs a statement that must touch exactly one row.
func (r *BaseRepository) execOne(ctx context.Context, op string, query string, args ...any) error {
	tag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return mapWriteError(err, op)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	}
	return nil
}

// queryAll runs a query and collects every row into T by column name.
func queryAll[T any](ctx context.Context, pool *pgxpool.Pool, op string, query string, args ...any) ([]T, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	return items, nil
}

// queryOne runs a query expected to return a single row.
func queryOne[T any](ctx context.Context, pool *pgxpool.Pool, op string, query string, args ...any) (*T, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, mapReadError(err, op)
	}
	return &item, nil
}
