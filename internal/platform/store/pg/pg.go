// Package pg opens the pgx pool and logs queries through pgx's tracer hook
package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"promptcorrector/internal/platform/logger"
)

// Config configures the pool
type Config struct {
	URL      string
	AppName  string // reported to Postgres as application_name
	MaxConns int32
	Slow     time.Duration // queries at least this slow log at warn
	LogSQL   bool

	// boot knobs; zero means 20 attempts with a 3s ping timeout
	ConnectRetries int
	PingTimeout    time.Duration
}

var newPool = pgxpool.NewWithConfig

// Open builds the pool and pings it with capped exponential backoff so the
// API can start before Postgres finishes booting
func Open(ctx context.Context, cfg Config, log logger.Logger) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		pcfg.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	if cfg.LogSQL {
		pcfg.ConnConfig.Tracer = NewTracer(log, cfg.Slow)
	}

	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	if err := ping(ctx, pool, cfg); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func ping(ctx context.Context, pool *pgxpool.Pool, cfg Config) error {
	attempts := cfg.ConnectRetries
	if attempts <= 0 {
		attempts = 20
	}
	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	var err error
	wait := 150 * time.Millisecond
	for i := 0; i < attempts; i++ {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		err = pool.Ping(pctx)
		cancel()
		if err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		wait = min(wait*2, 2*time.Second)
	}
	return fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, err)
}
