// Package httpkit is what modules import to declare routes: handler
// adapters, the envelope types and validation, without reaching into the
// platform transport packages
package httpkit

import (
	"net/http"

	phttp "promptcorrector/internal/platform/net/http"
	"promptcorrector/internal/platform/net/http/bind"
)

type (
	// Envelope is the JSON body of every response
	Envelope = phttp.Envelope
	// Response lets a handler pick its status
	Response = phttp.Response
	// Router is the surface MountRoutes receives
	Router = phttp.Router
	// FieldLevel is what a custom validation tag inspects
	FieldLevel = bind.FieldLevel
)

// RegisterTag adds a validation tag usable in DTO struct tags; {0} in msg is the field
func RegisterTag(tag string, fn func(FieldLevel) bool, msg string) error {
	return bind.RegisterTag(tag, fn, msg)
}

// Validate checks a DTO that was not decoded from a JSON body
func Validate(v any) error { return bind.Validate(v) }

// Created answers 201 with data
func Created(data any) Response { return phttp.Created(data) }

// NoContent answers 204
func NoContent() Response { return phttp.NoContent() }

// URLParam returns the {name} segment of the matched route
func URLParam(r *http.Request, name string) string { return phttp.URLParam(r, name) }
