// Package logger owns the process-wide zerolog logger and the request
// fields (request id, reviewer) that child loggers pick up from a context
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"promptcorrector/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the logging type every package passes around
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level       string // trace..panic, unknown means debug
	Format      string // console or json
	Service     string
	Component   string
	Writer      io.Writer // defaults to stdout
	WithCaller  bool
	SampleEvery int // keep one event in N when N > 1
}

// FromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_SERVICE, LOG_COMPONENT, LOG_CALLER and LOG_SAMPLE_EVERY
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:       env.Get("LEVEL", "debug"),
		Format:      strings.ToLower(env.Get("FORMAT", "console")),
		Service:     env.Get("SERVICE", ""),
		Component:   env.Get("COMPONENT", ""),
		WithCaller:  env.GetBool("CALLER", false),
		SampleEvery: env.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	once sync.Once
	root *Logger
)

// Init builds the root logger. Only the first call has any effect
func Init(opt Options) {
	once.Do(func() { root = build(opt) })
}

// Get returns the root logger, building it from the environment on first use
func Get() *Logger {
	Init(FromEnv())
	return root
}

func build(opt Options) *Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	w := opt.Writer
	if w == nil {
		w = os.Stdout
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	fields := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
	if opt.Service != "" {
		fields = fields.Str("service", opt.Service)
	}
	if opt.Component != "" {
		fields = fields.Str("component", opt.Component)
	}
	if opt.WithCaller {
		fields = fields.Caller()
	}
	l := fields.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return &l
}

func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return lvl
}

type ctxKey int

const (
	keyRequestID ctxKey = iota
	keyReviewer
)

// WithRequest stores the request id and acting reviewer on ctx; blanks are skipped
func WithRequest(ctx context.Context, reqID, reviewer string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, keyRequestID, reqID)
	}
	if reviewer != "" {
		ctx = context.WithValue(ctx, keyReviewer, reviewer)
	}
	return ctx
}

// C returns a child of the root logger carrying the fields stored on ctx
func C(ctx context.Context) *Logger {
	fields := Get().With()
	if s, _ := ctx.Value(keyRequestID).(string); s != "" {
		fields = fields.Str("request_id", s)
	}
	if s, _ := ctx.Value(keyReviewer).(string); s != "" {
		fields = fields.Str("reviewer", s)
	}
	l := fields.Logger()
	return &l
}

// Named returns a child of the root logger tagged with component
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
