package query

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// Transaction executes the given function within a database transaction.
//
// The transaction is committed if f returns nil, otherwise it is rolled back
// and the error returned by f is passed through.
func Transaction(ctx context.Context, db *sql.DB, f func(context.Context, *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	err = f(ctx, tx)
	if err != nil {
		return rollback(tx, err)
	}

	err = tx.Commit()
	if errors.Is(err, sql.ErrTxDone) {
		// Ignore duplicate commits/rollbacks.
		err = nil
	}

	return err
}

// Rollback a transaction after the given error occurred. If the rollback
// succeeds the given error is returned, otherwise a new error that wraps it
// gets generated and returned.
func rollback(tx *sql.Tx, reason error) error {
	err := tx.Rollback()
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		slog.Warn("Failed to rollback transaction after error", slog.Any("reason", reason), slog.Any("err", err))
		return fmt.Errorf("%w (rollback failed: %v)", reason, err)
	}

	return reason
}
