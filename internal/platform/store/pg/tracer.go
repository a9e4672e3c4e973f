package pg

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"promptcorrector/internal/platform/logger"
)

// Tracer logs every statement with its duration. It is installed only
// when SQL logging is on, so it logs at info whatever the root level is
type Tracer struct {
	log  logger.Logger
	slow time.Duration
	now  func() time.Time
}

var _ pgx.QueryTracer = (*Tracer)(nil)

// NewTracer returns a tracer writing to log; slow of zero never escalates to warn
func NewTracer(log logger.Logger, slow time.Duration) *Tracer {
	return &Tracer{
		log:  log.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger(),
		slow: slow,
		now:  time.Now,
	}
}

type queryKey struct{}

type started struct {
	sql  string
	args []any
	at   time.Time
}

// TraceQueryStart remembers the statement until it ends
func (t *Tracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryKey{}, started{sql: data.SQL, args: data.Args, at: t.now()})
}

// TraceQueryEnd logs the finished statement
func (t *Tracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	q, ok := ctx.Value(queryKey{}).(started)
	if !ok {
		return
	}
	elapsed := t.now().Sub(q.at)
	slow := t.slow > 0 && elapsed >= t.slow

	evt := t.log.Info()
	if slow || data.Err != nil {
		evt = t.log.Warn()
	}
	evt.Str("sql", compact(q.sql)).
		Interface("args", q.args).
		Dur("elapsed", elapsed).
		Bool("slow", slow).
		Int64("rows", data.CommandTag.RowsAffected()).
		Err(data.Err).
		Msg("pg query")
}

// compact folds runs of whitespace so multi-line SQL logs on one line
func compact(s string) string { return strings.Join(strings.Fields(s), " ") }
