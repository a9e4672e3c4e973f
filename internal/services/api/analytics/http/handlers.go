// Package http provides http transport for analytics
package http

import (
	stdhttp "net/http"

	"promptcorrector/internal/modkit/httpkit"
	svc "promptcorrector/internal/services/api/analytics/service"
)

// Register mounts analytics endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.summary)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /analytics Analytics analyticsSummary
// @Summary Per reviewer review counts
// @Description Total is approve plus edit. Rejects are counted but left out of totals. Pulled records are ignored
// @Tags Analytics
// @Produce json
// @Success 200 {object} analytics.Summary "ok"
// @Router /analytics [get]
func (h *handlers) summary(r *stdhttp.Request) (any, error) {
	return h.svc.Summary(r.Context())
}
