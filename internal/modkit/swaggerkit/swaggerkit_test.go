package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "promptcorrector/internal/platform/net/http"
)

func TestMount_ServesDocumentAndRedirect(t *testing.T) {
	t.Parallel()

	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), true)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, DocsPath+"/doc.json", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &doc); err != nil {
		t.Fatalf("doc.json: %v", err)
	}
	for _, p := range []string{"/sessions", "/sessions/{id}/submit", "/history", "/analytics", "/upload/file"} {
		if _, ok := doc.Paths[p]; !ok {
			t.Errorf("doc.json missing %s", p)
		}
	}

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, DocsPath, nil))
	if rr.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect status = %d", rr.Code)
	}
}

func TestMount_Disabled(t *testing.T) {
	t.Parallel()

	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), false)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, DocsPath+"/doc.json", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rr.Code)
	}
}
