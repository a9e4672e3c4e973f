// Package module wires prompt uploads into the API
package module

import (
	"promptcorrector/internal/modkit"
	"promptcorrector/internal/modkit/httpkit"
	uploadhttp "promptcorrector/internal/services/api/upload/http"
	uploadsvc "promptcorrector/internal/services/api/upload/service"
	records "promptcorrector/internal/services/records/domain"
)

// Deps are the records ports uploads write through
type Deps struct {
	Records records.IngestPort
}

// Module accepts prompt files under /upload
type Module struct {
	b   modkit.Built
	svc uploadsvc.Service
}

// New panics unless modkit.WithPorts(Deps{...}) carries a records port
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Named("upload", "/upload", opts...)
	in := modkit.RequirePorts[Deps](b)
	if in.Records == nil {
		panic("upload module requires a records port")
	}
	return &Module{b: b, svc: uploadsvc.New(in.Records, deps.Metrics)}
}

func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { uploadhttp.Register(rr, m.svc) })
}

func (m *Module) Name() string   { return m.b.Name }
func (m *Module) Prefix() string { return m.b.Prefix }
func (m *Module) Ports() any     { return m.svc }
