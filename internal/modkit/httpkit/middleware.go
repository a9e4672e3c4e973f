package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"promptcorrector/internal/platform/net/middleware"
)

// CommonStack is the middleware every /api/v1 route runs behind, outermost first.
// origins restricts CORS; none allows any origin
func CommonStack(origins ...string) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.Recover,
		middleware.AccessLog(time.Second),
		middleware.NoCache(),
		middleware.CORS(origins...),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}

// Heartbeat answers GET path with 200 ahead of routing. Install it on the root router
func Heartbeat(path string) func(http.Handler) http.Handler { return middleware.Heartbeat(path) }
