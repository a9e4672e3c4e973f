// Package module is the contract the composition root mounts, plus the
// lookups modules use to find each other's ports. It sits apart from
// modkit so a module's own ports type never imports modkit back
package module

import phttp "promptcorrector/internal/platform/net/http"

// Module is one mountable slice of the API
type Module interface {
	Name() string
	MountRoutes(r phttp.Router)
	Ports() any // nil when the module exposes nothing
}
