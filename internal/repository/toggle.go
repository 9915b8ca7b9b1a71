package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// toggleRow deletes the (owner, user) row when present and inserts it otherwise.
// Returns true only when this call added the row, so a concurrent toggle that
// loses the insert race reports false. table and columns are package constants.
func toggleRow(ctx context.Context, db *sqlx.DB, table, ownerCol string, ownerID, userID uuid.UUID) (bool, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND user_id = $2`, table, ownerCol)
	result, err := tx.ExecContext(ctx, deleteQuery, ownerID, userID)
	if err != nil {
		return false, err
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	added := false
	if removed == 0 {
		added, err = insertMembership(ctx, tx, table, ownerCol, ownerID, userID)
		if err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit toggle: %w", err)
	}
	return added, nil
}

// insertMembership reports whether the row was written; a conflicting row yields false.
func insertMembership(ctx context.Context, exec sqlx.ExecerContext, table, ownerCol string, ownerID, userID uuid.UUID) (bool, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, table, ownerCol)
	result, err := exec.ExecContext(ctx, query, ownerID, userID)
	if err != nil {
		return false, err
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return inserted > 0, nil
}
