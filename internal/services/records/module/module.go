// Package module builds the records service, the only owner of the review
// table. It serves no routes; other modules reach it through its Ports
package module

import (
	"promptcorrector/internal/modkit"
	"promptcorrector/internal/modkit/httpkit"
	"promptcorrector/internal/services/records/domain"
	"promptcorrector/internal/services/records/repo"
	"promptcorrector/internal/services/records/service"
)

// Ports exposed by the records module
type Ports struct {
	Records domain.Port
}

// Module holds the records service over deps.PG
type Module struct {
	ports Ports
}

// New reads CLAIM_TTL, BATCH_SIZE and UPSERT_CHUNK under CORE_API_ from deps.Cfg
func New(deps modkit.Deps) *Module {
	o := FromConfig(deps.Cfg)
	svc := service.New(deps.PG, repo.NewPG(), service.Config{
		ClaimTTL:    o.ClaimTTL,
		BatchSize:   o.BatchSize,
		UpsertChunk: o.UpsertChunk,
	})
	svc.Metrics = deps.Metrics
	return &Module{ports: Ports{Records: svc}}
}

func (m *Module) Name() string               { return "records" }
func (m *Module) Ports() any                 { return m.ports }
func (m *Module) MountRoutes(httpkit.Router) {}
