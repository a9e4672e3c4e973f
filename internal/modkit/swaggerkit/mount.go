// Package swaggerkit serves the embedded OpenAPI document and a Swagger UI over it
package swaggerkit

import (
	_ "embed"
	"net/http"

	phttp "promptcorrector/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPath is where the UI lives; the document is DocsPath + "/doc.json"
const DocsPath = "/api/docs"

//go:embed openapi.json
var document []byte

// Mount registers the UI and the document on r. It does nothing unless enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	docURL := DocsPath + "/doc.json"
	r.Get(DocsPath, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, DocsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(docURL, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(document)
	})
	r.Handle(DocsPath+"/*", httpSwagger.Handler(httpSwagger.URL(docURL)))
}
