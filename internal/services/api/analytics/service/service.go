// Package service serves the review progress summary
package service

import (
	"context"

	"promptcorrector/internal/core/analytics"
	"promptcorrector/internal/platform/logger"
	records "promptcorrector/internal/services/records/domain"
)

// Service defines the analytics service contract
type Service interface {
	Summary(ctx context.Context) (analytics.Summary, error)
}

// Svc folds a full status scan into a summary
type Svc struct {
	records records.ScanPort
}

// New constructs an analytics service
func New(recs records.ScanPort) *Svc {
	if recs == nil {
		panic("analytics.Service requires records ports")
	}
	return &Svc{records: recs}
}

// Summary scans every record and aggregates per reviewer
func (s *Svc) Summary(ctx context.Context) (analytics.Summary, error) {
	rows, err := s.records.StatusRows(ctx)
	if err != nil {
		return analytics.Summary{}, err
	}
	in := make([]analytics.Row, len(rows))
	for i, r := range rows {
		in[i] = analytics.Row{Reviewer: r.Reviewer, Status: r.Status, Pulled: r.Pulled}
	}
	sum := analytics.Summarize(in)
	logger.C(ctx).Debug().Int("rows", len(rows)).Int("reviewers", len(sum.Reviewers)).Msg("analytics: summarized")
	return sum, nil
}
