// Package module wires review history into the API
package module

import (
	"promptcorrector/internal/modkit"
	"promptcorrector/internal/modkit/httpkit"
	historyhttp "promptcorrector/internal/services/api/history/http"
	historysvc "promptcorrector/internal/services/api/history/service"
	records "promptcorrector/internal/services/records/domain"
)

// Deps are the records ports history reads
type Deps struct {
	Records records.HistoryPort
}

// Module serves a reviewer's recent reviews under /history
type Module struct {
	b   modkit.Built
	svc historysvc.Service
}

// New panics unless modkit.WithPorts(Deps{...}) carries a records port
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Named("history", "/history", opts...)
	in := modkit.RequirePorts[Deps](b)
	if in.Records == nil {
		panic("history module requires a records port")
	}
	return &Module{b: b, svc: historysvc.New(in.Records)}
}

func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { historyhttp.Register(rr, m.svc) })
}

func (m *Module) Name() string   { return m.b.Name }
func (m *Module) Prefix() string { return m.b.Prefix }
func (m *Module) Ports() any     { return m.svc }
