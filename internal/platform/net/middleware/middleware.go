// Package middleware assembles the request pipeline from chi's middleware,
// go-chi/cors and the access log and panic recovery kept here
package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	pnet "promptcorrector/internal/platform/net"
	pstrings "promptcorrector/internal/platform/strings"
)

// Middleware is one stage of the pipeline
type Middleware = func(http.Handler) http.Handler

// RequestID accepts X-Request-Id or generates one, then copies it onto the
// logger fields so every log line of the request carries it
func RequestID() Middleware {
	scope := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := pnet.RequestID(r.Context())
			w.Header().Set(chimw.RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(pnet.WithRequest(r.Context(), id, "")))
		})
	}
	return func(next http.Handler) http.Handler { return chimw.RequestID(scope(next)) }
}

// RealIP trusts X-Forwarded-For and X-Real-IP from the proxy in front of the API
func RealIP() Middleware { return chimw.RealIP }

// NoCache marks every response uncacheable; review data changes per request
func NoCache() Middleware { return chimw.NoCache }

// Compress gzips JSON responses at level
func Compress(level int) Middleware {
	return chimw.NewCompressor(level, "application/json").Handler
}

// Heartbeat answers GET path with 200 before routing
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// StripSlashes routes /sessions/ like /sessions
func StripSlashes() Middleware { return chimw.StripSlashes }

// Timeout cancels the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// CORS lets the review front end call the API. No origins means any origin
func CORS(origins ...string) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins: pstrings.IfEmpty(origins, []string{"*"}),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", chimw.RequestIDHeader},
		ExposedHeaders: []string{chimw.RequestIDHeader},
		MaxAge:         300,
	})
}
