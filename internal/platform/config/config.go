// Package config reads settings from prefixed environment variables.
// Must* panics through the logger when a value is missing; May* falls back to a default
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"promptcorrector/internal/platform/logger"
)

// Conf scopes lookups under a prefix such as "CORE_API_"
type Conf struct{ prefix string }

// New returns an unscoped Conf
func New() Conf { return Conf{} }

// Prefix returns a Conf scoped one level deeper
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) lookup(key string) (name, val string) {
	name = c.prefix + key
	return name, strings.TrimSpace(os.Getenv(name))
}

// MustString returns the value of key, panicking when it is unset or blank
func (c Conf) MustString(key string) string {
	name, v := c.lookup(key)
	if v == "" {
		logger.Get().Panic().Str("key", name).Msg("missing required env")
	}
	return v
}

// MayString returns the value of key or def
func (c Conf) MayString(key, def string) string {
	if _, v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// mayParse returns def for a blank value and warns before returning def for an unparsable one
func mayParse[T any](c Conf, key string, def T, kind string, parse func(string) (T, error)) T {
	name, s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", name).Str("value", s).Interface("default", def).
			Msgf("invalid %s; using default", kind)
		return def
	}
	return v
}

// MayInt returns key as an int or def
func (c Conf) MayInt(key string, def int) int {
	return mayParse(c, key, def, "int", strconv.Atoi)
}

// MayBool returns key as a bool or def
func (c Conf) MayBool(key string, def bool) bool {
	return mayParse(c, key, def, "bool", strconv.ParseBool)
}

// MayDuration returns key as a duration (250ms, 2s, 1h) or def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return mayParse(c, key, def, "duration", time.ParseDuration)
}

// MayEnum returns key or def, panicking when the value is not one of allowed.
// Matching ignores case; the value comes back as written
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return v
		}
	}
	name, _ := c.lookup(key)
	logger.Get().Panic().Str("key", name).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
