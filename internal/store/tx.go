package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jekabolt/sales-panel/internal/dependency"
	"github.com/jmoiron/sqlx"
)

const (
	mysqlErrLockWaitTimeout = 1205
	mysqlErrLockDeadlock    = 1213

	maxTxAttempts = 5
	txRetryDelay  = 20 * time.Millisecond
)

// inTx is the DB of a store bound to a transaction. Nested transactions are
// not supported.
type inTx struct {
	*sqlx.Tx
}

func (inTx) BeginTxx(context.Context, *sql.TxOptions) (*sqlx.Tx, error) {
	return nil, errors.New("already in transaction")
}

func (ms *MYSQLStore) DB() dependency.DB {
	return ms.db
}

// InTx returns true if the store is bound to a transaction.
func (ms *MYSQLStore) InTx() bool {
	return ms.tx != nil
}

// Tx runs f in a serializable transaction and commits when f returns nil.
// Deadlocks and lock wait timeouts roll back and run f again, up to
// maxTxAttempts times, so f must wrap store errors with %w.
func (ms *MYSQLStore) Tx(ctx context.Context, f func(context.Context, dependency.Repository) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = ms.runTx(ctx, f)
		if err == nil || !ms.IsErrorRepeat(err) {
			return err
		}
		slog.Default().WarnContext(ctx, "retrying transaction",
			slog.Int("attempt", attempt),
			slog.String("err", err.Error()),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * txRetryDelay):
		}
	}
	return fmt.Errorf("transaction gave up after %d attempts: %w", maxTxAttempts, err)
}

func (ms *MYSQLStore) runTx(ctx context.Context, f func(context.Context, dependency.Repository) error) error {
	rep, err := ms.TxBegin(ctx)
	if err != nil {
		return err
	}
	if err := f(ctx, rep); err != nil {
		_ = rep.TxRollback(ctx)
		return err
	}
	if err := rep.TxCommit(ctx); err != nil {
		_ = rep.TxRollback(ctx)
		return err
	}
	return nil
}

// txOrCurrent runs f in the current transaction, or opens one.
func (ms *MYSQLStore) txOrCurrent(ctx context.Context, f func(context.Context, dependency.Repository) error) error {
	if ms.InTx() {
		return f(ctx, ms)
	}
	return ms.Tx(ctx, f)
}

// TxBegin returns a copy of the store bound to a new transaction. Its clock
// is frozen at the start of the transaction.
func (ms *MYSQLStore) TxBegin(ctx context.Context) (dependency.Repository, error) {
	tx, err := ms.DB().BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("can't begin transaction: %w", err)
	}
	return &MYSQLStore{
		db:    inTx{Tx: tx},
		tx:    tx,
		ts:    ms.Now(),
		close: ms.close,
	}, nil
}

func (ms *MYSQLStore) TxCommit(context.Context) error {
	if ms.tx == nil {
		return errors.New("not in transaction")
	}
	if err := ms.tx.Commit(); err != nil {
		return err
	}
	ms.tx = nil
	return nil
}

func (ms *MYSQLStore) TxRollback(context.Context) error {
	if ms.tx == nil {
		return errors.New("not in transaction")
	}
	if err := ms.tx.Rollback(); err != nil {
		return err
	}
	ms.tx = nil
	return nil
}

// Now returns the store clock, frozen inside transactions.
func (ms *MYSQLStore) Now() time.Time {
	if ms.ts.IsZero() {
		return time.Now()
	}
	return ms.ts
}

func mysqlErrNumber(err error) uint16 {
	var e *mysql.MySQLError
	if errors.As(err, &e) {
		return e.Number
	}
	return 0
}

// IsErrorRepeat reports deadlocks and lock wait timeouts.
func (ms *MYSQLStore) IsErrorRepeat(err error) bool {
	n := mysqlErrNumber(err)
	return n == mysqlErrLockDeadlock || n == mysqlErrLockWaitTimeout
}
