// Package http is the transport layer: the chi backed router, the JSON
// envelope every endpoint answers with, and the server lifecycle
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "promptcorrector/internal/platform/errors"
	pnet "promptcorrector/internal/platform/net"
	"promptcorrector/internal/platform/net/http/bind"
)

// Envelope wraps every JSON body. Errors fill Code and Error; validation
// failures also list their problems under data.problems
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v with status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is what a handler returns; Body may be an error
type Response struct {
	Status int
	Body   any
}

// OK is a 200 with data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created is a 201 with data
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent is a bodiless 204
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error answers with the status err's code maps to
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a Response returning function to a Handler
func Handle(fn func(*stdhttp.Request) Response) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) { fn(r).write(w, r) }
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	env := Envelope{StatusCode: resp.Status, RequestID: pnet.RequestID(r.Context())}

	if err, ok := resp.Body.(error); ok && err != nil {
		wire := perr.WireFrom(err)
		env.StatusCode = perr.HTTPStatus(err)
		env.Code, env.Error = wire.Code, wire.Message
		if len(wire.Problems) > 0 {
			env.Data = map[string]any{"problems": wire.Problems}
		}
	} else {
		env.Data = resp.Body
	}

	switch env.StatusCode {
	case 0:
		env.StatusCode = stdhttp.StatusOK
	case stdhttp.StatusNoContent:
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}
	env.Status = stdhttp.StatusText(env.StatusCode)
	JSON(w, env.StatusCode, env)
}

// JSONHandler decodes and validates a T from the body before calling fn
func JSONHandler[T any](fn func(*stdhttp.Request, T) (any, error)) Handler {
	return Handle(func(r *stdhttp.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return result(fn(r, in))
	})
}

// JSONHandlerNoBody calls fn without reading the body
func JSONHandlerNoBody(fn func(*stdhttp.Request) (any, error)) Handler {
	return Handle(func(r *stdhttp.Request) Response { return result(fn(r)) })
}

// result passes a Response built by the handler through and wraps anything else as 200
func result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}
