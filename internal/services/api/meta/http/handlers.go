// Package http serves liveness, readiness, build info and the review
// vocabulary clients render their controls from
package http

import (
	"context"
	"net/http"
	"time"

	"promptcorrector/internal/core/review"
	"promptcorrector/internal/core/tagcodec"
	"promptcorrector/internal/core/tagger"
	"promptcorrector/internal/core/version"
	"promptcorrector/internal/modkit/httpkit"
)

// readyTimeout bounds every dependency probe
const readyTimeout = 2 * time.Second

// Pinger is a dependency /ready can probe
type Pinger interface {
	Ping(context.Context) error
}

// Deps are what the meta routes report on
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          Pinger // nil reports the database as skipped
}

// Register mounts /health, /ready, /version and /vocabulary
func Register(r httpkit.Router, d Deps) {
	httpkit.Get(r, "/health", d.health)
	httpkit.Get(r, "/ready", d.ready)
	httpkit.Get(r, "/version", func(*http.Request) (any, error) { return version.Info(), nil })
	httpkit.Get(r, "/vocabulary", func(*http.Request) (any, error) { return vocabulary(), nil })
}

// HealthResponse says the process is up and for how long
type HealthResponse struct {
	OK            bool      `json:"ok"             example:"true"`
	Service       string    `json:"service"        example:"promptcorrector-api"`
	Started       time.Time `json:"started"        example:"2026-05-14T09:00:00Z"`
	UptimeSeconds int64     `json:"uptime_seconds" example:"300"`
}

// Check is one probed dependency; Status is ok, fail or skipped
type Check struct {
	Name   string `json:"name"            example:"pg"`
	Status string `json:"status"          example:"ok"`
	Error  string `json:"error,omitempty" example:"connection refused"`
}

// ReadyResponse rolls the checks up: ok, degraded when a probe was skipped, or fail
type ReadyResponse struct {
	Status string  `json:"status" example:"ok"`
	Checks []Check `json:"checks"`
}

// VocabularyResponse lists the submit actions, emotion labels and tag colors
type VocabularyResponse struct {
	Actions  []review.Action               `json:"actions"`
	Emotions []review.Emotion              `json:"emotions"`
	Tags     map[tagger.Tag]tagcodec.Color `json:"tags"`
}

// @Summary Liveness and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (d Deps) health(*http.Request) (any, error) {
	return HealthResponse{
		OK:            true,
		Service:       d.ServiceName,
		Started:       d.StartedAt.UTC(),
		UptimeSeconds: int64(time.Since(d.StartedAt) / time.Second),
	}, nil
}

// @Summary Readiness with dependency probes
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Router /meta/ready [get]
func (d Deps) ready(r *http.Request) (any, error) {
	pg := Check{Name: "pg", Status: "skipped"}
	if d.PG != nil {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()
		pg.Status = "ok"
		if err := d.PG.Ping(ctx); err != nil {
			pg.Status, pg.Error = "fail", err.Error()
		}
	}

	out := ReadyResponse{Status: "ok", Checks: []Check{pg}}
	for _, c := range out.Checks {
		switch {
		case c.Status == "fail":
			out.Status = "fail"
		case c.Status == "skipped" && out.Status == "ok":
			out.Status = "degraded"
		}
	}
	return out, nil
}

func vocabulary() VocabularyResponse {
	tags := make(map[tagger.Tag]tagcodec.Color, 2)
	for _, t := range []tagger.Tag{tagger.English, tagger.Yoruba} {
		tags[t] = tagcodec.ColorOf(t)
	}
	return VocabularyResponse{Actions: review.SubmitActions, Emotions: review.Emotions, Tags: tags}
}
