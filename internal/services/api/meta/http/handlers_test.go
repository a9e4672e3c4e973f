package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	phttp "promptcorrector/internal/platform/net/http"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func get(t *testing.T, d Deps, path string, out any) int {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), d)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	env := struct {
		Data any `json:"data"`
	}{Data: out}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return rr.Code
}

func TestReady(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		pg   Pinger
		want string
	}{
		{"ok", pinger{}, "ok"},
		{"fail", pinger{err: errors.New("connection refused")}, "fail"},
		{"no pg", nil, "degraded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out ReadyResponse
			if code := get(t, Deps{PG: tc.pg}, "/ready", &out); code != http.StatusOK {
				t.Fatalf("status = %d", code)
			}
			if out.Status != tc.want || len(out.Checks) != 1 {
				t.Fatalf("ready = %+v", out)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()
	d := Deps{ServiceName: "promptcorrector-api", StartedAt: time.Now().Add(-time.Minute)}

	var h HealthResponse
	if code := get(t, d, "/health", &h); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if !h.OK || h.Service != d.ServiceName || h.UptimeSeconds < 59 {
		t.Fatalf("health = %+v", h)
	}
}

func TestVocabulary(t *testing.T) {
	t.Parallel()
	var v VocabularyResponse
	get(t, Deps{}, "/vocabulary", &v)
	if len(v.Actions) != 3 || len(v.Emotions) != 7 || v.Tags["en"] != "blue" || v.Tags["yo"] != "red" {
		t.Fatalf("vocabulary = %+v", v)
	}
}
