package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "promptcorrector/internal/platform/errors"

	"github.com/go-playground/validator/v10"
)

type startReq struct {
	Username string `json:"username" validate:"required,max=8"`
	Limit    int    `json:"limit" validate:"min=0,max=100"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestParseJSON_Success(t *testing.T) {
	got, err := ParseJSON[startReq](post(`{"username":"ada","limit":5}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if got.Username != "ada" || got.Limit != 5 {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_DecodeFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "invalid json", body: `{"username":`},
		{name: "unknown field", body: `{"username":"a","role":"admin"}`},
		{name: "trailing data", body: `{"username":"a"} {}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseJSON[startReq](post(tc.body))
			if !perr.IsCode(err, perr.ErrorCodeJSON) {
				t.Fatalf("want JSON error, got %v", err)
			}
		})
	}
}

func TestParseJSON_EmptyBodyOnGetIsZero(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	got, err := ParseJSON[startReq](r)
	if err != nil || got.Username != "" {
		t.Fatalf("GET with no body = %+v, %v", got, err)
	}
}

func TestParseJSON_ReportsEveryFieldProblem(t *testing.T) {
	_, err := ParseJSON[startReq](post(`{"username":"","limit":101}`))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	probs := perr.ProblemsOf(err)
	if len(probs) != 2 {
		t.Fatalf("problems = %q", probs)
	}
	if !strings.Contains(probs[0], "username") || probs[1] != "limit must be at most 100" {
		t.Fatalf("problems = %q", probs)
	}
	if e, ok := perr.As(err); !ok || e.Field() != "username" {
		t.Fatalf("field not attached: %v", err)
	}
}

type tagged struct {
	Color string `json:"color" validate:"primary"`
}

func TestRegisterTag(t *testing.T) {
	err := RegisterTag("primary", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "red", "blue", "yellow":
			return true
		}
		return false
	}, "{0} must be a primary color")
	if err != nil {
		t.Fatalf("RegisterTag: %v", err)
	}

	if err := Validate(tagged{Color: "blue"}); err != nil {
		t.Fatalf("valid value rejected: %v", err)
	}
	err = Validate(tagged{Color: "green"})
	if probs := perr.ProblemsOf(err); len(probs) != 1 || probs[0] != "color must be a primary color" {
		t.Fatalf("problems = %q", probs)
	}
}
