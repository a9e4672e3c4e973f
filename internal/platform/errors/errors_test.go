package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrorCodeValidation:  http.StatusBadRequest,
		ErrorCodeJSON:        http.StatusBadRequest,
		ErrorCodeForbidden:   http.StatusForbidden,
		ErrorCodeNotFound:    http.StatusNotFound,
		ErrorCodeConflict:    http.StatusConflict,
		ErrorCodeUnavailable: http.StatusServiceUnavailable,
		ErrorCodeDB:          http.StatusInternalServerError,
		ErrorCodePanic:       http.StatusInternalServerError,
		ErrorCodeUnknown:     http.StatusInternalServerError,
		ErrorCode(400):       http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := HTTPStatusCode(code); got != want {
			t.Errorf("HTTPStatusCode(%s) = %d, want %d", code, got, want)
		}
	}
}

func TestErrorCodeString(t *testing.T) {
	if ErrorCodeNotFound.String() != "not_found" {
		t.Fatalf("String() = %q", ErrorCodeNotFound.String())
	}
	if got := ErrorCode(77).String(); got != "code(77)" {
		t.Fatalf("unknown String() = %q", got)
	}
}

func TestError_MessageAndCause(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil render = %q", nilErr.Error())
	}

	if got := Newf(ErrorCodeJSON, "bad body at %d", 7).Error(); got != "bad body at 7" {
		t.Fatalf("Newf = %q", got)
	}

	cause := stderrs.New("connection reset")
	err := Wrapf(cause, ErrorCodeDB, "claim %s", "Mary_Set_1_0")
	if err.Error() != "claim Mary_Set_1_0: connection reset" {
		t.Fatalf("Wrapf = %q", err.Error())
	}
	if !stderrs.Is(err, cause) || Root(err) != cause {
		t.Fatalf("cause lost: Root=%v", Root(err))
	}

	outer := fmt.Errorf("service: %w", err)
	if CodeOf(outer) != ErrorCodeDB || HTTPStatus(outer) != http.StatusInternalServerError {
		t.Fatalf("CodeOf through fmt wrap = %s", CodeOf(outer))
	}
}

func TestHelpersCarryTheirCode(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorCode
	}{
		{NotFoundf("session %s", "x"), ErrorCodeNotFound},
		{Conflictf("record %s already reviewed", "x"), ErrorCodeConflict},
		{Forbiddenf("not yours"), ErrorCodeForbidden},
		{DBf("pool closed"), ErrorCodeDB},
		{JSONErrf("unexpected EOF"), ErrorCodeJSON},
		{PanicErrf("boom"), ErrorCodePanic},
		{ErrNotFound, ErrorCodeNotFound},
	}
	for _, c := range cases {
		if !IsCode(c.err, c.want) {
			t.Errorf("%v: code = %s, want %s", c.err, CodeOf(c.err), c.want)
		}
	}
	if IsCode(nil, ErrorCodeUnknown) {
		t.Fatal("nil never matches a code")
	}
	if CodeOf(stderrs.New("plain")) != ErrorCodeUnknown {
		t.Fatal("foreign errors are unknown")
	}
}

func TestWithField(t *testing.T) {
	base := New(ErrorCodeValidation, "username is required")
	named := WithField(base, "username")

	e, ok := As(named)
	if !ok || e.Field() != "username" || e.Code() != ErrorCodeValidation {
		t.Fatalf("WithField = %+v", e)
	}
	if orig, _ := As(base); orig.Field() != "" {
		t.Fatal("WithField must not mutate the original")
	}

	plain := stderrs.New("plain")
	if WithField(plain, "x") != plain {
		t.Fatal("foreign errors pass through")
	}
}

func TestWireFrom(t *testing.T) {
	if w := WireFrom(nil); !reflect.DeepEqual(w, Wire{}) {
		t.Fatalf("nil wire = %+v", w)
	}
	w := WireFrom(WithField(New(ErrorCodeForbidden, "claimed by someone else"), "record_id"))
	if w.Code != ErrorCodeForbidden || w.Message != "claimed by someone else" || w.Field != "record_id" {
		t.Fatalf("wire = %+v", w)
	}
	w = WireFrom(stderrs.New("disk full"))
	if w.Code != ErrorCodeUnknown || w.Message != "disk full" {
		t.Fatalf("foreign wire = %+v", w)
	}
}
