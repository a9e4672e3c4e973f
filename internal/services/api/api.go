// Package api composes the review modules into the HTTP API
package api

import (
	"context"
	"net/http"

	"promptcorrector/internal/platform/config"
	"promptcorrector/internal/platform/logger"
	"promptcorrector/internal/platform/metrics"
	phttp "promptcorrector/internal/platform/net/http"
	"promptcorrector/internal/platform/store"

	"promptcorrector/internal/modkit"
	"promptcorrector/internal/modkit/httpkit"
	"promptcorrector/internal/modkit/module"
	"promptcorrector/internal/modkit/swaggerkit"

	analyticsmod "promptcorrector/internal/services/api/analytics/module"
	historymod "promptcorrector/internal/services/api/history/module"
	metamod "promptcorrector/internal/services/api/meta/module"
	sessionmod "promptcorrector/internal/services/api/session/module"
	uploadmod "promptcorrector/internal/services/api/upload/module"

	// records owns the review table; every API module reads its ports
	recordsmod "promptcorrector/internal/services/records/module"
)

// Options configure Mount
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Metrics        *metrics.Metrics // nil disables /metrics and request metrics
	Migrate        bool             // apply the embedded schema before mounting
	EnableSwagger  bool
	EnableProfiler bool
	CORSOrigins    []string // empty allows any origin
}

// Mount applies the schema when asked, then mounts every module under /api/v1
// behind the common middleware stack
func Mount(ctx context.Context, r phttp.Router, opt Options) error {
	r.Use(httpkit.Heartbeat("/health"))

	deps := modkit.Deps{
		Cfg:     opt.Config,
		PG:      opt.Store.PG,
		Metrics: opt.Metrics,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// records first; the API modules all read its port
	records := recordsmod.New(deps)
	recs := module.MustPortsOf[recordsmod.Ports](records).Records

	if opt.Migrate {
		if err := recs.EnsureSchema(ctx); err != nil {
			return err
		}
		logger.C(ctx).Info().Msg("api: schema applied")
	}

	mods := []module.Module{
		records,
		metamod.New(deps),
		sessionmod.New(deps, modkit.WithPorts(sessionmod.Deps{Records: recs})),
		historymod.New(deps, modkit.WithPorts(historymod.Deps{Records: recs})),
		analyticsmod.New(deps, modkit.WithPorts(analyticsmod.Deps{Records: recs})),
		uploadmod.New(deps, modkit.WithPorts(uploadmod.Deps{Records: recs})),
	}

	stack := httpkit.CommonStack(opt.CORSOrigins...)
	if opt.Metrics != nil {
		stack = append([]func(http.Handler) http.Handler{opt.Metrics.Middleware()}, stack...)
		r.Handle("/metrics", opt.Metrics.Handler())
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())

			m.MountRoutes(api)
		}
	})
	return nil
}
