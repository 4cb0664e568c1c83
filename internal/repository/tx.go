package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier 為 *pgxpool.Pool 與 pgx.Tx 的共同介面
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

type Transactor interface {
	// WithinTx 在同一個 transaction 中執行 fn，fn 回傳錯誤時 rollback
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type TransactorImpl struct {
	pool *pgxpool.Pool
}

func NewTransactor(pool *pgxpool.Pool) Transactor {
	return &TransactorImpl{pool: pool}
}

func (t *TransactorImpl) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	// 已在 transaction 中則沿用
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := t.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	// commit 之後 rollback 為 no-op；使用 WithoutCancel 確保取消時仍能 rollback
	defer tx.Rollback(context.WithoutCancel(ctx))

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// querier 回傳 context 中的 transaction，沒有則回傳 pool
func querier(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}
