// Package domain holds DTOs and ports for review history
package domain

import (
	"context"

	"promptcorrector/internal/core/tagcodec"
	records "promptcorrector/internal/services/records/domain"
)

// Limits for a history page
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// HistoryInput selects one reviewer's recent reviews
type HistoryInput struct {
	Reviewer string `json:"reviewer" validate:"required,max=64" example:"adunni"`
	Limit    int    `json:"limit" validate:"gte=0,lte=100" example:"10"`
}

// Entry is one reviewed record with its tags rendered for display
type Entry struct {
	Record records.Record         `json:"record"`
	Tags   []tagcodec.ColoredWord `json:"tags"`
}

// HistoryOutput lists entries newest first
type HistoryOutput struct {
	Reviewer    string  `json:"reviewer" example:"adunni"`
	Entries     []Entry `json:"entries"`
	ReviewCount int     `json:"review_count" example:"42"`
}

// ServicePort reads review history
type ServicePort interface {
	History(ctx context.Context, in HistoryInput) (HistoryOutput, error)
}
