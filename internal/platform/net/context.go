// Package net carries request scoped values between middleware and handlers
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"

	"promptcorrector/internal/platform/logger"
)

// WithRequest stores the request id where chi and the logger both find it,
// and the acting reviewer on the logger fields
func WithRequest(ctx context.Context, reqID, reviewer string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return logger.WithRequest(ctx, reqID, reviewer)
}

// RequestID returns the id set by the RequestID middleware or WithRequest
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }
