// Package bind decodes request bodies and validates DTOs with
// go-playground/validator, reporting failures as Validation errors whose
// problems are english messages keyed by json field names
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "promptcorrector/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

// MaxBodyBytes caps a JSON request body
const MaxBodyBytes = 1 << 20

// FieldLevel is what a custom tag function inspects
type FieldLevel = validator.FieldLevel

type engine struct {
	v     *validator.Validate
	trans ut.Translator
}

var get = sync.OnceValue(func() *engine {
	loc := en.New()
	trans, _ := ut.New(loc, loc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = entrans.RegisterDefaultTranslations(v, trans)

	e := &engine{v: v, trans: trans}
	_ = e.message("min", "{0} must be at least {1}", true)
	_ = e.message("max", "{0} must be at most {1}", true)
	return e
})

// message overrides the english text for tag; withParam passes the tag parameter as {1}
func (e *engine) message(tag, text string, withParam bool) error {
	return e.v.RegisterTranslation(tag, e.trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			params := []string{fe.Field()}
			if withParam {
				params = append(params, fe.Param())
			}
			s, _ := t.T(tag, params...)
			return s
		},
	)
}

// RegisterTag adds a custom validation tag with its message; {0} is the field name
func RegisterTag(tag string, fn validator.Func, msg string) error {
	e := get()
	if err := e.v.RegisterValidation(tag, fn); err != nil {
		return err
	}
	return e.message(tag, msg, false)
}

// ParseJSON decodes one JSON object into T, rejecting unknown fields and
// trailing data, then validates it. A bodiless GET or DELETE yields the zero T
func ParseJSON[T any](r *http.Request) (T, error) {
	var dst T
	defer r.Body.Close()

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dst); err != nil {
		if errors.Is(err, io.EOF) {
			if r.Method == http.MethodGet || r.Method == http.MethodDelete {
				return dst, nil
			}
			return dst, perr.JSONErrf("empty body")
		}
		return dst, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return dst, perr.JSONErrf("unexpected trailing data")
	}
	return dst, Validate(dst)
}

// Validate checks v's struct tags. Every failing field becomes one problem;
// the first one names the error's field
func Validate(v any) error {
	err := get().v.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return perr.Wrap(err, perr.ErrorCodeValidation, "validation failed")
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fe.Translate(get().trans)
	}
	return perr.WithField(perr.NewProblems(msgs[0], msgs), verrs[0].Field())
}
