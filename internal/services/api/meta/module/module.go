// Package module wires the meta endpoints into the API
package module

import (
	"time"

	"promptcorrector/internal/core/version"
	"promptcorrector/internal/modkit"
	"promptcorrector/internal/modkit/httpkit"
	metahttp "promptcorrector/internal/services/api/meta/http"
)

// Module serves readiness, version and vocabulary under /meta. It exposes no ports
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New pings deps.PG for readiness when it can be pinged
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	d := metahttp.Deps{ServiceName: version.Info().Service, StartedAt: time.Now()}
	if p, ok := deps.PG.(metahttp.Pinger); ok {
		d.PG = p
	}
	return &Module{b: modkit.Named("meta", "/meta", opts...), deps: d}
}

func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

func (m *Module) Name() string   { return m.b.Name }
func (m *Module) Prefix() string { return m.b.Prefix }
func (m *Module) Ports() any     { return nil }
