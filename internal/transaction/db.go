package transaction

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is the subset of *sql.DB and *sql.Tx used by the repositories.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// TX is a running database transaction.
type TX interface {
	DBTX
	StmtContext(ctx context.Context, stmt *sql.Stmt) *sql.Stmt
}

// DB routes statements into the transaction carried by the context, if any.
type DB struct {
	*sql.DB
}

var _ DBTX = &DB{}

// Enable wraps db with support for context carried transactions.
func Enable(db *sql.DB) *DB {
	return &DB{DB: db}
}

func (d *DB) conn(ctx context.Context) (DBTX, error) {
	tc, ok := ctx.Value(tcKey{}).(*transactionContainer)
	if !ok {
		return d.DB, nil
	}

	return tc.begin(ctx, d.DB)
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	conn, err := d.conn(ctx)
	if err != nil {
		return nil, err
	}

	return conn.ExecContext(ctx, query, args...)
}

func (d *DB) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	conn, err := d.conn(ctx)
	if err != nil {
		return nil, err
	}

	return conn.PrepareContext(ctx, query)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	conn, err := d.conn(ctx)
	if err != nil {
		return nil, err
	}

	return conn.QueryContext(ctx, query, args...)
}

// GetDBTX returns the transaction carried by ctx when db supports context
// carried transactions, db itself otherwise.
func GetDBTX(ctx context.Context, db DBTX) (DBTX, error) {
	d, ok := db.(*DB)
	if !ok {
		return db, nil
	}

	return d.conn(ctx)
}

// ForceTx runs f within a transaction. The transaction carried by ctx is
// joined if there is one, otherwise a new one is started and committed once f
// succeeds.
func ForceTx(ctx context.Context, db DBTX, f func(ctx context.Context, tx TX) error) error {
	return Do(ctx, func(ctx context.Context) error {
		conn, err := GetDBTX(ctx, db)
		if err != nil {
			return err
		}

		tx, ok := conn.(TX)
		if !ok {
			return fmt.Errorf("Database handle %T does not support transactions", db)
		}

		return f(ctx, tx)
	})
}
