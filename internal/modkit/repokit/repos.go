// Package repokit is the seam between repositories and the store: repos
// are written against Queryer and bound per call, so the same code runs on
// the pool or inside a transaction
package repokit

import (
	"context"

	"promptcorrector/internal/platform/store"
)

// Queryer is what a bound repo issues SQL through
type Queryer = store.RowQuerier

// TxRunner opens transactions
type TxRunner = store.TxRunner

// Binder produces a repo bound to q
type Binder[T any] interface {
	Bind(q Queryer) T
}

// WithTx binds a repo to a transaction and runs fn with it. The transaction
// commits when fn returns nil and rolls back otherwise
func WithTx[T any](ctx context.Context, tx TxRunner, b Binder[T], fn func(T) error) error {
	return tx.Tx(ctx, func(q Queryer) error { return fn(b.Bind(q)) })
}
