// Package domain holds DTOs and ports for prompt uploads
package domain

import (
	"context"

	"promptcorrector/internal/core/batch"
)

// UploadInput is a batch of prompts sent as JSON; every row is one prompt
type UploadInput struct {
	Creator     string   `json:"creator" validate:"max=64" example:"Mary140520250115"`
	SetNum      string   `json:"set_num" validate:"max=32" example:"4"`
	Domain      string   `json:"domain,omitempty" validate:"max=64" example:"Health"`
	CreatorName string   `json:"creator_name,omitempty" validate:"max=128" example:"Mary"`
	Rows        []string `json:"rows" validate:"max=10000" example:"Mo fẹ́ go to the market"`
}

// Params returns the batch provenance of the upload
func (in UploadInput) Params() batch.Params {
	return batch.Params{Creator: in.Creator, SetNum: in.SetNum, Domain: in.Domain, CreatorName: in.CreatorName}
}

// UploadOutput reports what was built and, unless previewing, written
type UploadOutput struct {
	Preview bool           `json:"preview"`
	Written int            `json:"written" example:"20"`
	Records []batch.Prompt `json:"records"`
}

// ServicePort ingests prompt batches
type ServicePort interface {
	// Ingest validates rows and stores them as pending records unless preview is set
	Ingest(ctx context.Context, p batch.Params, rows [][]string, preview bool) (UploadOutput, error)
}
