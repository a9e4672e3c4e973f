// Package module wires the analytics summary into the API
package module

import (
	"promptcorrector/internal/modkit"
	"promptcorrector/internal/modkit/httpkit"
	analyticshttp "promptcorrector/internal/services/api/analytics/http"
	analyticssvc "promptcorrector/internal/services/api/analytics/service"
	records "promptcorrector/internal/services/records/domain"
)

// Deps are the records ports analytics scans
type Deps struct {
	Records records.ScanPort
}

// Module serves dataset statistics under /analytics
type Module struct {
	b   modkit.Built
	svc analyticssvc.Service
}

// New panics unless modkit.WithPorts(Deps{...}) carries a records port
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Named("analytics", "/analytics", opts...)
	in := modkit.RequirePorts[Deps](b)
	if in.Records == nil {
		panic("analytics module requires a records port")
	}
	return &Module{b: b, svc: analyticssvc.New(in.Records)}
}

func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { analyticshttp.Register(rr, m.svc) })
}

func (m *Module) Name() string   { return m.b.Name }
func (m *Module) Prefix() string { return m.b.Prefix }
func (m *Module) Ports() any     { return m.svc }
