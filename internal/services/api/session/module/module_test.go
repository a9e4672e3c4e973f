package module

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"promptcorrector/internal/core/review"
	"promptcorrector/internal/modkit"
	"promptcorrector/internal/modkit/httpkit"
	perr "promptcorrector/internal/platform/errors"
	phttp "promptcorrector/internal/platform/net/http"
	records "promptcorrector/internal/services/records/domain"
)

// oneRecord serves a single pending record
type oneRecord struct {
	rec      records.Record
	released bool
}

func (o *oneRecord) ClaimNext(_ context.Context, owner string) (*records.Record, error) {
	if o.rec.Status != review.Pending {
		return nil, nil
	}
	o.rec.ClaimedBy = owner
	cp := o.rec
	return &cp, nil
}

func (o *oneRecord) Release(context.Context, string, string) error {
	o.released = true
	return nil
}

func (o *oneRecord) Get(context.Context, string) (records.Record, error) { return o.rec, nil }

func (o *oneRecord) Submit(_ context.Context, in records.Submission) (records.Record, error) {
	if o.rec.Status != review.Pending {
		return records.Record{}, perr.Conflictf("stale")
	}
	o.rec.Status, o.rec.Reviewer, o.rec.ReviewedText = review.Status(in.Action), in.Reviewer, in.ReviewedText
	o.rec.Emotions, o.rec.LanguageTags = in.Emotions, in.Tags
	return o.rec, nil
}

func (o *oneRecord) Undo(context.Context, string, string) (records.Record, error) {
	return records.Record{}, perr.Conflictf("pending")
}

func (o *oneRecord) History(context.Context, string, int) ([]records.Record, error) { return nil, nil }

func (o *oneRecord) ReviewCount(_ context.Context, reviewer string) (int, error) {
	if o.rec.Reviewer == reviewer {
		return 1, nil
	}
	return 0, nil
}

func mount(t *testing.T, recs *oneRecord) *chi.Mux {
	t.Helper()
	mux := chi.NewRouter()
	m := New(modkit.Deps{}, modkit.WithPorts(Deps{Records: recs}))
	httpkit.MountAPIV1(phttp.AdaptChi(mux), nil, m.MountRoutes)
	return mux
}

func do(t *testing.T, mux http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(rr, req)
	if rr.Code == http.StatusNoContent {
		return rr.Code, nil
	}
	var env struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: decode: %v body=%s", method, path, err, rr.Body.String())
	}
	return rr.Code, env.Data
}

func TestNew_RequiresRecordsPorts(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic without records ports")
		}
	}()
	New(modkit.Deps{})
}

func TestRoutes_ReviewFlow(t *testing.T) {
	recs := &oneRecord{rec: records.Record{ID: "Mary_Set_1_0", CodeSwitchedText: "Mo go", Status: review.Pending}}
	mux := mount(t, recs)

	code, data := do(t, mux, http.MethodPost, "/api/v1/sessions", `{"username":"Adunni"}`)
	if code != http.StatusCreated {
		t.Fatalf("start status = %d", code)
	}
	id, _ := data["session_id"].(string)
	if id == "" || data["reviewer"] != "adunni" {
		t.Fatalf("start data = %v", data)
	}
	base := "/api/v1/sessions/" + id

	if code, data = do(t, mux, http.MethodPost, base+"/next", ""); code != http.StatusOK || data["record"] == nil {
		t.Fatalf("next = %d %v", code, data)
	}
	if code, _ = do(t, mux, http.MethodPost, base+"/toggle", `{"index":-1}`); code != http.StatusBadRequest {
		t.Fatalf("negative toggle status = %d", code)
	}
	if code, _ = do(t, mux, http.MethodPost, base+"/submit", `{"action":"undo"}`); code != http.StatusBadRequest {
		t.Fatalf("undo as submit status = %d", code)
	}
	if code, _ = do(t, mux, http.MethodPost, base+"/submit", `{"action":"approve","emotions":["glad"]}`); code != http.StatusBadRequest {
		t.Fatalf("unknown emotion status = %d", code)
	}

	code, data = do(t, mux, http.MethodPost, base+"/submit", `{"action":"approve","emotions":["Happy"]}`)
	if code != http.StatusOK {
		t.Fatalf("submit status = %d", code)
	}
	if data["review_count"] != float64(1) {
		t.Fatalf("submit data = %v", data)
	}

	if code, _ = do(t, mux, http.MethodPost, base+"/undo", `{"record_id":"Mary_Set_1_0"}`); code != http.StatusConflict {
		t.Fatalf("undo status = %d", code)
	}
	if code, _ = do(t, mux, http.MethodDelete, base, ""); code != http.StatusNoContent {
		t.Fatalf("release status = %d", code)
	}
	if code, _ = do(t, mux, http.MethodGet, base, ""); code != http.StatusNotFound {
		t.Fatalf("view after release status = %d", code)
	}
}
