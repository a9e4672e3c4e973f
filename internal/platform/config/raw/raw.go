// Package raw reads environment variables without importing the logger,
// so the logger itself can be configured from the environment
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf scopes lookups under a prefix such as "LOG_"
type Conf struct{ prefix string }

// New returns an unscoped Conf
func New() Conf { return Conf{} }

// Prefix returns a Conf scoped one level deeper
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Get returns the trimmed value of key or def
func (c Conf) Get(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(c.prefix + key)); v != "" {
		return v
	}
	return def
}

// GetBool accepts 1, true and yes in any case; other non-blank values are false
func (c Conf) GetBool(key string, def bool) bool {
	switch strings.ToLower(c.Get(key, "")) {
	case "":
		return def
	case "1", "true", "yes":
		return true
	}
	return false
}

// GetInt returns a non-negative integer or def
func (c Conf) GetInt(key string, def int) int {
	n, err := strconv.Atoi(c.Get(key, ""))
	if err != nil || n < 0 {
		return def
	}
	return n
}
