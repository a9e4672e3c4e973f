package module

import (
	"strings"
	"time"

	"promptcorrector/internal/core/tagger"
	"promptcorrector/internal/platform/config"
)

// Options holds configuration settings for review sessions
type Options struct {
	SessionTTL  time.Duration
	Cleanup     time.Duration
	FallbackTag tagger.Tag // tag for words neither the lexicon nor the shape rules decide
}

// FromConfig reads CORE_API_SESSION_TTL, CORE_API_SESSION_CLEANUP and CORE_API_FALLBACK_TAG
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_API_")
	fb := c.MayEnum("FALLBACK_TAG", string(tagger.English), string(tagger.English), string(tagger.Yoruba))
	return Options{
		SessionTTL:  c.MayDuration("SESSION_TTL", 30*time.Minute),
		Cleanup:     c.MayDuration("SESSION_CLEANUP", time.Minute),
		FallbackTag: tagger.Tag(strings.ToLower(fb)),
	}
}
