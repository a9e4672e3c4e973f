// Package http provides http transport for review history
package http

import (
	stdhttp "net/http"
	"strconv"

	"promptcorrector/internal/modkit/httpkit"
	perr "promptcorrector/internal/platform/errors"
	"promptcorrector/internal/services/api/history/domain"
	svc "promptcorrector/internal/services/api/history/service"
)

// Register mounts history endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /history History historyList
// @Summary A reviewer's recent reviews
// @Description Newest first. Pulled records and records without a timestamp are left out
// @Tags History
// @Produce json
// @Param reviewer query string true "Reviewer username"
// @Param limit query int false "Page size 1..100, default 10"
// @Success 200 {object} domain.HistoryOutput "ok"
// @Failure 400 {object} httpkit.Envelope
// @Router /history [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	in := domain.HistoryInput{Reviewer: q.Get("reviewer")}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "limit %q is not a number", raw), "limit")
		}
		in.Limit = n
	}
	if err := httpkit.Validate(in); err != nil {
		return nil, err
	}
	return h.svc.History(r.Context(), in)
}
