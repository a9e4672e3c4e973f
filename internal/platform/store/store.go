// Package store hides the Postgres pool behind the small Row, Rows and
// Exec seams repositories are written against
package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"promptcorrector/internal/platform/logger"
	"promptcorrector/internal/platform/store/pg"
)

// Row is a single result row
type Row interface {
	Scan(dest ...any) error
}

// Rows iterates a result set; Close must be called
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// CommandTag reports what a write did
type CommandTag interface {
	RowsAffected() int64
}

// RowQuerier is the SQL surface repos use
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner runs fn in a transaction that commits when fn returns nil
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Store holds the configured backends. PG is nil when Postgres is disabled
type Store struct {
	Log logger.Logger
	PG  TxRunner
}

// Option configures Open
type Option func(*Store)

// WithLogger sets the logger the SQL tracer writes to
func WithLogger(log logger.Logger) Option {
	return func(s *Store) { s.Log = log }
}

// Open connects the enabled backends, waiting for Postgres to accept connections
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{Log: *logger.Named("store")}
	for _, o := range opts {
		o(s)
	}
	if !cfg.PG.Enabled {
		return s, nil
	}
	pool, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		AppName:  cfg.AppName,
		MaxConns: cfg.PG.MaxConns,
		Slow:     time.Duration(cfg.PG.SlowQueryMs) * time.Millisecond,
		LogSQL:   cfg.PG.LogSQL,
	}, s.Log)
	if err != nil {
		return nil, err
	}
	s.PG = &poolRunner{querier: querier{pool}, pool: pool}
	return s, nil
}

// Close releases the pool
func (s *Store) Close(context.Context) error {
	if p, ok := s.PG.(*poolRunner); ok {
		p.pool.Close()
	}
	return nil
}

// pgxQuerier is the method set pgxpool.Pool and pgx.Tx share
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type querier struct{ q pgxQuerier }

func (q querier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return q.q.Exec(ctx, sql, args...)
}

func (q querier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rows, err := q.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (q querier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return q.q.QueryRow(ctx, sql, args...)
}

type poolRunner struct {
	querier
	pool *pgxpool.Pool
}

// Ping backs the readiness probe
func (p *poolRunner) Ping(ctx context.Context) error { return p.pool.Ping(ctx) }

func (p *poolRunner) Tx(ctx context.Context, fn func(RowQuerier) error) error {
	return pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error { return fn(querier{tx}) })
}
