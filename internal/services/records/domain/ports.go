package domain

import (
	"context"

	"promptcorrector/internal/core/batch"
)

// QueuePort hands out pending records under a lease
type QueuePort interface {
	// ClaimNext leases one eligible record to owner; nil when nothing is claimable
	ClaimNext(ctx context.Context, owner string) (*Record, error)
	Release(ctx context.Context, id, owner string) error
	Get(ctx context.Context, id string) (Record, error)
}

// ReviewPort applies review transitions
type ReviewPort interface {
	Submit(ctx context.Context, in Submission) (Record, error)
	Undo(ctx context.Context, id, reviewer string) (Record, error)
}

// HistoryPort reads a reviewer's past work
type HistoryPort interface {
	History(ctx context.Context, reviewer string, limit int) ([]Record, error)
	ReviewCount(ctx context.Context, reviewer string) (int, error)
}

// ScanPort reads the status of every record
type ScanPort interface {
	StatusRows(ctx context.Context) ([]StatusRow, error)
}

// IngestPort writes uploaded prompt batches
type IngestPort interface {
	UpsertBatch(ctx context.Context, prompts []batch.Prompt) (int, error)
}

// SchemaPort applies the table definition
type SchemaPort interface {
	EnsureSchema(ctx context.Context) error
}

// Port is the full records surface
type Port interface {
	QueuePort
	ReviewPort
	HistoryPort
	ScanPort
	IngestPort
	SchemaPort
}
