package httpkit

import (
	"net/http"

	phttp "promptcorrector/internal/platform/net/http"
)

// Handlers return either data (sent as 200), a Response from Created or
// NoContent, or an error mapped through its code

// PostJSON registers POST path with a decoded and validated T body
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(h))
}

// Get registers GET path
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.JSONHandlerNoBody(h))
}

// Post registers POST path without decoding a body
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, phttp.JSONHandlerNoBody(h))
}

// Delete registers DELETE path
func Delete(r Router, path string, h func(*http.Request) (any, error)) {
	r.Delete(path, phttp.JSONHandlerNoBody(h))
}
