package middleware_test

import (
	"compress/flate"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	perr "promptcorrector/internal/platform/errors"
	pnet "promptcorrector/internal/platform/net"
	phttp "promptcorrector/internal/platform/net/http"
	"promptcorrector/internal/platform/net/middleware"
)

func run(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRequestID(t *testing.T) {
	var seen string
	h := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimw.RequestIDHeader, "rid-42")
	rr := run(h, req)
	if seen != "rid-42" || rr.Header().Get(chimw.RequestIDHeader) != "rid-42" {
		t.Fatalf("propagated id = %q, header = %q", seen, rr.Header().Get(chimw.RequestIDHeader))
	}

	run(h, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" {
		t.Fatal("missing id was not generated")
	}
}

func TestAccessLog_PassesThrough(t *testing.T) {
	for _, slow := range []time.Duration{0, time.Nanosecond} {
		h := middleware.AccessLog(slow)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, "ok")
			_, _ = io.WriteString(w, "!")
		}))
		rr := run(h, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))
		if rr.Code != http.StatusCreated || rr.Body.String() != "ok!" {
			t.Fatalf("slow=%v: %d %q", slow, rr.Code, rr.Body.String())
		}
	}
}

func TestRecover(t *testing.T) {
	h := middleware.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("nil map")
	}))
	rr := run(h, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
	var env phttp.Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Code != perr.ErrorCodePanic || env.Error != "internal error" {
		t.Fatalf("envelope = %+v", env)
	}

	abort := middleware.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	defer func() {
		if recover() != http.ErrAbortHandler {
			t.Fatal("ErrAbortHandler must propagate")
		}
	}()
	run(abort, httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestCompress(t *testing.T) {
	h := middleware.Compress(flate.BestSpeed)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"text":"`+strings.Repeat("ẹ", 2<<10)+`"}`)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	if rr := run(h, req); rr.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("Content-Encoding = %q", rr.Header().Get("Content-Encoding"))
	}
}

func TestCORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	preflight := func(origin string) *http.Request {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/sessions", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		return req
	}

	rr := run(middleware.CORS("https://review.example.com")(ok), preflight("https://review.example.com"))
	if rr.Header().Get("Access-Control-Allow-Origin") != "https://review.example.com" {
		t.Fatalf("allowed origin = %q", rr.Header().Get("Access-Control-Allow-Origin"))
	}
	rr = run(middleware.CORS("https://review.example.com")(ok), preflight("https://evil.example.com"))
	if rr.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatal("foreign origin allowed")
	}
	rr = run(middleware.CORS()(ok), preflight("https://anywhere.example.com"))
	if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("wildcard = %q", rr.Header().Get("Access-Control-Allow-Origin"))
	}
}
