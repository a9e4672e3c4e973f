package service

import (
	"context"
	"testing"

	"promptcorrector/internal/core/batch"
	perr "promptcorrector/internal/platform/errors"
	"promptcorrector/internal/platform/metrics"
	"promptcorrector/internal/platform/testkit"
)

type sink struct {
	got  []batch.Prompt
	fail error
}

func (s *sink) UpsertBatch(_ context.Context, ps []batch.Prompt) (int, error) {
	if s.fail != nil {
		return 0, s.fail
	}
	s.got = append(s.got, ps...)
	return len(ps), nil
}

var params = batch.Params{Creator: "Mary140520250115", SetNum: "4"}

func newSvc(t *testing.T, s *sink) *Svc {
	t.Helper()
	m, err := metrics.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return New(s, m)
}

func TestIngest_Write(t *testing.T) {
	t.Parallel()
	s := &sink{}
	out, err := newSvc(t, s).Ingest(context.Background(), params, [][]string{{`"Mo fẹ́ go"`}, {"second"}}, false)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if out.Preview || out.Written != 2 || len(s.got) != 2 {
		t.Fatalf("out = %+v stored = %d", out, len(s.got))
	}
	if s.got[1].ID != "Mary140520250115_Set_4_1" || s.got[0].CodeSwitchedText != "Mo fẹ́ go" || s.got[0].Domain != "General" {
		t.Fatalf("stored = %+v", s.got)
	}
}

func TestIngest_PreviewWritesNothing(t *testing.T) {
	t.Parallel()
	s := &sink{}
	out, err := newSvc(t, s).Ingest(context.Background(), params, [][]string{{"a"}}, true)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if !out.Preview || out.Written != 0 || len(out.Records) != 1 || len(s.got) != 0 {
		t.Fatalf("out = %+v stored = %d", out, len(s.got))
	}
}

func TestIngest_Rejects(t *testing.T) {
	t.Parallel()
	s := &sink{}
	_, err := newSvc(t, s).Ingest(context.Background(), batch.Params{}, [][]string{{"a", "b"}, {""}}, false)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("err = %v", err)
	}
	// creator, set number, two bad rows
	if n := len(perr.ProblemsOf(err)); n != 4 {
		t.Fatalf("problems = %v", perr.ProblemsOf(err))
	}
	if len(s.got) != 0 {
		t.Fatal("rejected batch was written")
	}
}

func TestIngest_StoreError(t *testing.T) {
	t.Parallel()
	_, err := newSvc(t, &sink{fail: perr.DBf("down")}).Ingest(context.Background(), params, [][]string{{"a"}}, false)
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("err = %v", err)
	}
}

func TestNew_NilPanics(t *testing.T) {
	t.Parallel()
	testkit.MustPanic(t, func() { New(nil, nil) })
}
