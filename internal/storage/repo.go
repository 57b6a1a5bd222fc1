package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/venstudio/studio-backend/internal/domain"
)

// queryList runs a SELECT and maps every row through scanOne. Failures are
// returned, never collapsed into an empty result: callers need to tell
// "failed" apart from "no rows".
func queryList[T any](ctx context.Context, db *sql.DB, table, query string, scanOne func(scanner) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("table", table).Msg("list query failed")
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	out := make([]T, 0, 16)
	for rows.Next() {
		v, err := scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", table, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	return out, nil
}

// insertOne runs an INSERT ... RETURNING and maps the returned row.
func insertOne[T any](ctx context.Context, db *sql.DB, table, query string, args []any, scanOne func(scanner) (T, error)) (T, error) {
	v, err := scanOne(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Error().Err(err).Str("table", table).Msg("insert failed")
		var zero T
		return zero, fmt.Errorf("create %s: %w", table, err)
	}
	return v, nil
}

// updateOne applies a sparse update map to one record. The last-modified
// stamp is always written, even for an empty map. A missing ID surfaces as
// domain.ErrNotFound.
func updateOne[T any](ctx context.Context, db *sql.DB, table, id string, sets map[string]any, returning string, scanOne func(scanner) (T, error)) (T, error) {
	var zero T

	clause, args := setClause(sets, 2)
	query := "UPDATE " + table + " SET updated_at = now()"
	if clause != "" {
		query += ", " + clause
	}
	query += " WHERE id = $1 RETURNING " + returning

	v, err := scanOne(db.QueryRowContext(ctx, query, append([]any{id}, args...)...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, fmt.Errorf("update %s %s: %w", table, id, domain.ErrNotFound)
		}
		log.Error().Err(err).Str("table", table).Str("id", id).Msg("update failed")
		return zero, fmt.Errorf("update %s: %w", table, err)
	}
	return v, nil
}

// deleteByID removes one record, reporting domain.ErrNotFound when the ID
// matched nothing so a repeated delete is distinguishable.
func deleteByID(ctx context.Context, db *sql.DB, table, id string) error {
	res, err := db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		log.Error().Err(err).Str("table", table).Str("id", id).Msg("delete failed")
		return fmt.Errorf("delete %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	if n == 0 {
		return fmt.Errorf("delete %s %s: %w", table, id, domain.ErrNotFound)
	}
	return nil
}
