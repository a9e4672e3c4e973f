// Package modkit is how API modules are assembled: shared deps in, a
// name, a route prefix, middleware and cross module ports out
package modkit

import (
	"net/http"

	"promptcorrector/internal/modkit/httpkit"
	"promptcorrector/internal/modkit/module"
	pstrings "promptcorrector/internal/platform/strings"
)

// Module is what the composition root mounts
type Module = module.Module

// Option adjusts a module while it is built
type Option func(*Built)

// WithName names the module for the port registry and logs
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix sets the path the module's routes live under
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares runs mw, in order, in front of the module's routes only
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands the module the ports it consumes from other modules.
// The module declares the concrete type, usually a Deps struct
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }

// WithRoutes registers extra routes next to the module's own
func WithRoutes(fn func(httpkit.Router)) Option {
	return func(b *Built) { b.extra = append(b.extra, fn) }
}

// Built is a module's resolved options
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	extra []func(httpkit.Router)
}

// Build applies opts in order; later options win
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Named is Build with the module's own name and prefix applied first, so
// callers can still override them
func Named(name, prefix string, opts ...Option) Built {
	return Build(append([]Option{WithName(name), WithPrefix(prefix)}, opts...)...)
}

// Mount opens Prefix on r behind Mw and registers routes followed by any
// WithRoutes extras. A blank name or a root prefix panics
func (b Built) Mount(r httpkit.Router, routes func(httpkit.Router)) {
	pstrings.MustString(b.Name, "module name")
	r.Route(pstrings.MustPrefix(b.Prefix), func(sub httpkit.Router) {
		if len(b.Mw) > 0 {
			sub.Use(b.Mw...)
		}
		routes(sub)
		for _, fn := range b.extra {
			fn(sub)
		}
	})
}

// RequirePorts returns the ports given through WithPorts as T, panicking
// when they are missing or of another type
func RequirePorts[T any](b Built) T {
	p, ok := b.Ports.(T)
	if !ok {
		panic(b.Name + " module requires modkit.WithPorts with its Deps")
	}
	return p
}
