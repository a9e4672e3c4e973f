// Package http provides http transport for review sessions
package http

import (
	stdhttp "net/http"

	"promptcorrector/internal/modkit/httpkit"
	"promptcorrector/internal/services/api/session/domain"
	svc "promptcorrector/internal/services/api/session/service"
)

// Register mounts session endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.StartInput](r, "/", h.start)
	httpkit.Get(r, "/{id}", h.view)
	httpkit.Delete(r, "/{id}", h.release)
	httpkit.Post(r, "/{id}/next", h.next)
	httpkit.PostJSON[domain.ToggleInput](r, "/{id}/toggle", h.toggle)
	httpkit.PostJSON[domain.EditInput](r, "/{id}/edit", h.edit)
	httpkit.PostJSON[domain.SubmitInput](r, "/{id}/submit", h.submit)
	httpkit.PostJSON[domain.UndoInput](r, "/{id}/undo", h.undo)
}

type handlers struct{ svc svc.Service }

func sessionID(r *stdhttp.Request) string { return httpkit.URLParam(r, "id") }

// swagger:route POST /sessions Sessions sessionStart
// @Summary Start a review session
// @Description Opens a session for a free text username. Usernames are lowercased
// @Tags Sessions
// @Accept json
// @Produce json
// @Param payload body domain.StartInput true "Reviewer"
// @Success 201 {object} domain.View "created"
// @Failure 400 {object} httpkit.Envelope
// @Router /sessions [post]
func (h *handlers) start(r *stdhttp.Request, in domain.StartInput) (any, error) {
	v, err := h.svc.Start(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(v), nil
}

// swagger:route GET /sessions/{id} Sessions sessionView
// @Summary Current session state
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} domain.View "ok"
// @Failure 404 {object} httpkit.Envelope
// @Router /sessions/{id} [get]
func (h *handlers) view(r *stdhttp.Request) (any, error) {
	return h.svc.View(r.Context(), sessionID(r))
}

// swagger:route DELETE /sessions/{id} Sessions sessionRelease
// @Summary End a session and release its claimed record
// @Tags Sessions
// @Param id path string true "Session id"
// @Success 204 "released"
// @Failure 404 {object} httpkit.Envelope
// @Router /sessions/{id} [delete]
func (h *handlers) release(r *stdhttp.Request) (any, error) {
	if err := h.svc.Release(r.Context(), sessionID(r)); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// swagger:route POST /sessions/{id}/next Sessions sessionNext
// @Summary Load the next pending record
// @Description Keeps the loaded record until it is submitted. Record is null when the queue is empty
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} domain.NextOutput "ok"
// @Router /sessions/{id}/next [post]
func (h *handlers) next(r *stdhttp.Request) (any, error) {
	return h.svc.Next(r.Context(), sessionID(r))
}

// swagger:route POST /sessions/{id}/toggle Sessions sessionToggle
// @Summary Flip the language tag of one word
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.ToggleInput true "Word index"
// @Success 200 {object} domain.ToggleOutput "ok"
// @Failure 409 {object} httpkit.Envelope
// @Router /sessions/{id}/toggle [post]
func (h *handlers) toggle(r *stdhttp.Request, in domain.ToggleInput) (any, error) {
	return h.svc.Toggle(r.Context(), sessionID(r), in)
}

// swagger:route POST /sessions/{id}/edit Sessions sessionEdit
// @Summary Replace the text under review and retag it
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.EditInput true "Edited text"
// @Success 200 {object} domain.EditOutput "ok"
// @Router /sessions/{id}/edit [post]
func (h *handlers) edit(r *stdhttp.Request, in domain.EditInput) (any, error) {
	return h.svc.Edit(r.Context(), sessionID(r), in)
}

// swagger:route POST /sessions/{id}/submit Sessions sessionSubmit
// @Summary Approve, edit or reject the loaded record
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.SubmitInput true "Decision"
// @Success 200 {object} domain.ReviewOutput "ok"
// @Failure 400 {object} httpkit.Envelope
// @Failure 409 {object} httpkit.Envelope
// @Router /sessions/{id}/submit [post]
func (h *handlers) submit(r *stdhttp.Request, in domain.SubmitInput) (any, error) {
	return h.svc.Submit(r.Context(), sessionID(r), in)
}

// swagger:route POST /sessions/{id}/undo Sessions sessionUndo
// @Summary Send one of your reviewed records back to pending
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.UndoInput true "Record"
// @Success 200 {object} domain.ReviewOutput "ok"
// @Failure 403 {object} httpkit.Envelope
// @Failure 409 {object} httpkit.Envelope
// @Router /sessions/{id}/undo [post]
func (h *handlers) undo(r *stdhttp.Request, in domain.UndoInput) (any, error) {
	return h.svc.Undo(r.Context(), sessionID(r), in)
}
