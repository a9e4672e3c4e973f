package httpkit

import "net/http"

// V1 is the path the current API version is served under
const V1 = "/api/v1"

// MountAPIV1 groups routes under V1 so mw wraps them and nothing mounted at the root
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, routes func(Router)) {
	r.Route(V1, func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		routes(api)
	})
}
