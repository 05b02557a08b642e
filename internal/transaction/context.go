package transaction

import (
	"context"
	"database/sql"
	"errors"
	"sync"
)

type tcKey struct{}

type tx interface {
	TX
	Commit() error
	Rollback() error
}

type Transaction interface {
	Commit() error
	Rollback() error
}

// Begin marks ctx as transactional. The database transaction itself is only
// started by the first statement executed with the returned context. If ctx
// is already transactional, the outer transaction is joined and the returned
// Transaction is a no-op.
func Begin(ctx context.Context) (context.Context, Transaction) {
	existingTC := ctx.Value(tcKey{})
	if existingTC != nil {
		return ctx, &noopTransactionContainer{}
	}

	tc := &transactionContainer{}
	return context.WithValue(ctx, tcKey{}, tc), tc
}

// Do runs f within a transaction, which is committed if f succeeds and rolled
// back otherwise. Nested calls join the outermost transaction.
func Do(ctx context.Context, f func(ctx context.Context) error) error {
	ctx, trans := Begin(ctx)
	defer func() {
		_ = trans.Rollback()
	}()

	err := f(ctx)
	if err != nil {
		return err
	}

	return trans.Commit()
}

type transactionContainer struct {
	mu sync.Mutex
	tx tx
}

var _ Transaction = &transactionContainer{}

func (t *transactionContainer) begin(ctx context.Context, db *sql.DB) (tx, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.tx != nil {
		return t.tx, nil
	}

	sqlTx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	t.tx = sqlTx
	return t.tx, nil
}

func (t *transactionContainer) Commit() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.tx == nil {
		return nil
	}

	return t.tx.Commit()
}

func (t *transactionContainer) Rollback() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.tx == nil {
		return nil
	}

	err := t.tx.Rollback()
	if !errors.Is(err, sql.ErrTxDone) {
		return err
	}

	return nil
}

type noopTransactionContainer struct{}

var _ Transaction = noopTransactionContainer{}

func (n noopTransactionContainer) Commit() error {
	return nil
}

func (n noopTransactionContainer) Rollback() error {
	return nil
}
