package entities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/FuturFusion/security-manager/internal/transaction"
)

type dbtx = transaction.DBTX

type preparer interface {
	Prepare(query string) (*sql.Stmt, error)
}

// RegisterStmt register a SQL statement.
//
// Registered statements will be prepared upfront and reused, to speed up
// execution.
//
// Return a unique registration code.
func RegisterStmt(sql string) int {
	code := len(stmts)
	stmts[code] = sql
	return code
}

// PrepareStmts prepares all registered statements and returns an index from
// statement code to prepared statement object.
func PrepareStmts(db preparer, skipErrors bool) (map[int]*sql.Stmt, error) {
	index := map[int]*sql.Stmt{}

	for code, sql := range stmts {
		stmt, err := db.Prepare(sql)
		if err != nil && !skipErrors {
			return nil, fmt.Errorf("%q: %w", sql, err)
		}

		index[code] = stmt
	}

	return index, nil
}

var stmts = map[int]string{} // Statement code to statement SQL text.

// PreparedStmts is a placeholder for transitioning to package-scoped transaction functions.
var PreparedStmts = map[int]*sql.Stmt{}

// Stmt prepares the in-memory prepared statement for the transaction carried
// by ctx, if any.
func Stmt(ctx context.Context, db dbtx, code int) (*sql.Stmt, error) {
	stmt, ok := PreparedStmts[code]
	if !ok {
		return nil, fmt.Errorf("No prepared statement registered with code %d", code)
	}

	conn, err := transaction.GetDBTX(ctx, db)
	if err != nil {
		return nil, err
	}

	tx, ok := conn.(transaction.TX)
	if ok {
		return tx.StmtContext(ctx, stmt), nil
	}

	return stmt, nil
}

// StmtString returns the in-memory query string with the given code.
func StmtString(code int) (string, error) {
	stmt, ok := stmts[code]
	if !ok {
		return "", fmt.Errorf("No prepared statement registered with code %d", code)
	}

	return stmt, nil
}

var (
	// ErrNotFound is the error returned, if the entity is not found in the DB.
	ErrNotFound = errors.New("Not found")

	// ErrConflict is the error returned, if the adding or updating an entity
	// causes a conflict with an existing entity.
	ErrConflict = errors.New("Conflict")
)

var mapErr = defaultMapErr

func defaultMapErr(err error, entity string) error {
	return err
}

// query executes the given statement and runs the scan function for every
// yielded row.
func query(ctx context.Context, db dbtx, stmt string, args []any, scan func(scan func(dest ...any) error) error) error {
	rows, err := db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return err
	}

	return scanRows(rows, scan)
}

// queryStmt is like query, but uses the given prepared statement.
func queryStmt(ctx context.Context, stmt *sql.Stmt, args []any, scan func(scan func(dest ...any) error) error) error {
	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return err
	}

	return scanRows(rows, scan)
}

func scanRows(rows *sql.Rows, scan func(scan func(dest ...any) error) error) error {
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		err := scan(rows.Scan)
		if err != nil {
			return err
		}
	}

	return rows.Err()
}

// expectAffected returns ErrNotFound if the result did not touch exactly the
// expected number of rows.
func expectAffected(result sql.Result, want int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("Fetch affected rows: %w", err)
	}

	if n != want {
		return ErrNotFound
	}

	return nil
}
