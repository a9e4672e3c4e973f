package module

import (
	"time"

	"promptcorrector/internal/platform/config"
)

// Options holds configuration settings for the records module
type Options struct {
	ClaimTTL    time.Duration
	BatchSize   int
	UpsertChunk int
}

// FromConfig reads CORE_API_ settings shared with the session controller
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_API_")
	return Options{
		ClaimTTL:    c.MayDuration("CLAIM_TTL", 15*time.Minute),
		BatchSize:   c.MayInt("BATCH_SIZE", 20),
		UpsertChunk: c.MayInt("UPSERT_CHUNK", 500),
	}
}
