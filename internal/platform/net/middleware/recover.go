package middleware

import (
	"net/http"
	"runtime/debug"

	perr "promptcorrector/internal/platform/errors"
	"promptcorrector/internal/platform/logger"
	phttp "promptcorrector/internal/platform/net/http"
)

// Recover turns a handler panic into the standard 500 envelope and logs the stack.
// http.ErrAbortHandler is re-raised so the server can drop the connection
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			phttp.Handle(func(*http.Request) phttp.Response {
				return phttp.Error(perr.PanicErrf("internal error"))
			})(w, r)
		}()
		next.ServeHTTP(w, r)
	})
}
