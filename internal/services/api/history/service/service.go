// Package service implements review history reads
package service

import (
	"context"

	"promptcorrector/internal/core/tagcodec"
	perr "promptcorrector/internal/platform/errors"
	"promptcorrector/internal/platform/logger"
	pstrings "promptcorrector/internal/platform/strings"
	"promptcorrector/internal/services/api/history/domain"
	records "promptcorrector/internal/services/records/domain"
)

// Service defines the history service contract
type Service interface {
	domain.ServicePort
}

// Svc implements Service over the records history port
type Svc struct {
	records records.HistoryPort
}

// New constructs a history service
func New(recs records.HistoryPort) *Svc {
	if recs == nil {
		panic("history.Service requires records ports")
	}
	return &Svc{records: recs}
}

// History returns the reviewer's latest reviews, newest first
func (s *Svc) History(ctx context.Context, in domain.HistoryInput) (domain.HistoryOutput, error) {
	reviewer := pstrings.Fold(in.Reviewer)
	if reviewer == "" {
		return domain.HistoryOutput{}, perr.WithField(perr.New(perr.ErrorCodeValidation, "reviewer is required"), "reviewer")
	}
	limit := in.Limit
	switch {
	case limit == 0:
		limit = domain.DefaultLimit
	case limit < 0 || limit > domain.MaxLimit:
		return domain.HistoryOutput{}, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "limit must be between 1 and %d", domain.MaxLimit), "limit")
	}

	recs, err := s.records.History(ctx, reviewer, limit)
	if err != nil {
		return domain.HistoryOutput{}, err
	}
	n, err := s.records.ReviewCount(ctx, reviewer)
	if err != nil {
		return domain.HistoryOutput{}, err
	}

	out := domain.HistoryOutput{Reviewer: reviewer, Entries: make([]domain.Entry, 0, len(recs)), ReviewCount: n}
	for _, r := range recs {
		out.Entries = append(out.Entries, domain.Entry{Record: r, Tags: tagcodec.Colorize(r.LanguageTags)})
	}
	logger.C(ctx).Debug().Str("reviewer", reviewer).Int("entries", len(out.Entries)).Msg("history: read")
	return out, nil
}
