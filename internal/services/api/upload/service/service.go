// Package service turns uploaded prompt tables into pending records
package service

import (
	"context"

	"promptcorrector/internal/core/batch"
	perr "promptcorrector/internal/platform/errors"
	"promptcorrector/internal/platform/logger"
	"promptcorrector/internal/platform/metrics"
	"promptcorrector/internal/services/api/upload/domain"
	records "promptcorrector/internal/services/records/domain"
)

// Service defines the upload service contract
type Service interface {
	domain.ServicePort
}

// Upload modes used as metric labels
const (
	ModePreview = "preview"
	ModeWrite   = "write"
)

// Svc implements Service over the records ingest port
type Svc struct {
	records records.IngestPort
	metrics *metrics.Metrics
}

// New constructs an upload service; m may be nil
func New(recs records.IngestPort, m *metrics.Metrics) *Svc {
	if recs == nil {
		panic("upload.Service requires records ports")
	}
	return &Svc{records: recs, metrics: m}
}

// Ingest validates and builds the batch, then writes it in one transaction
func (s *Svc) Ingest(ctx context.Context, p batch.Params, rows [][]string, preview bool) (domain.UploadOutput, error) {
	mode := ModeWrite
	if preview {
		mode = ModePreview
	}
	log := logger.C(ctx).With().Str("creator", p.Creator).Str("set", p.SetNum).Str("mode", mode).Logger()

	prompts, err := batch.Build(rows, p)
	if err != nil {
		s.metrics.RecordUpload(mode, metrics.ResultInvalid, 0)
		log.Info().Int("problems", len(perr.ProblemsOf(err))).Msg("upload: rejected")
		return domain.UploadOutput{}, err
	}
	if preview {
		s.metrics.RecordUpload(mode, metrics.ResultOK, 0)
		return domain.UploadOutput{Preview: true, Records: prompts}, nil
	}

	n, err := s.records.UpsertBatch(ctx, prompts)
	if err != nil {
		s.metrics.RecordUpload(mode, metrics.ResultError, 0)
		log.Error().Err(err).Int("rows", len(prompts)).Msg("upload: write failed")
		return domain.UploadOutput{}, err
	}
	s.metrics.RecordUpload(mode, metrics.ResultOK, n)
	log.Info().Int("written", n).Msg("upload: stored")
	return domain.UploadOutput{Written: n, Records: prompts}, nil
}
